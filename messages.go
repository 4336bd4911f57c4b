package demoncoin

const introMessage = "Little demons want to know Notcoin's secrets.\n\n" +
	"Drag demons upwards by clicking on them & moving them simultaneously towards Notcoin!\n\n" +
	"Play Game 3 times to uncover all Notcoin knowledge"

const (
	promptMessage      = "PRESS ENTER"
	achievementMessage = "Achievement unlocked!\nYou have played this game 3 times"
)

// KnowledgeMessages are revealed in order, one per completed playthrough.
var KnowledgeMessages = [MaxPlayCount]string{
	"Demons are scared now. You have captured many of them!\n\n" +
		"Notcoin reveals its first piece of knowledge:\n\n" +
		"Did you know that Notcoin is the final future of crypto?\n\n" +
		"Now you know, little demons",
	"Demons are terrified! You've captured even more!\n\n" +
		"Notcoin is revealing second piece of its knowledge:\n\n" +
		"Did you know that there is Nothing stopping Notcoin from succeeding in the future?\n\n" +
		"Now you know",
	"Demons are in awe! You've captured them all!\n\n" +
		"Notcoin is revealing third and final piece of its knowledge:\n\n" +
		"Did you know that Notcoin is Everything and Everything is Nothing?\n\n" +
		"This coin is definitely NOT playing around! Now you know.\n\n" +
		"Little demons are impressed and give up to this knowledge. You won!",
}

// revealPromptOffsets push the prompt below longer messages.
var revealPromptOffsets = [MaxPlayCount]float64{100, 120, 180}
