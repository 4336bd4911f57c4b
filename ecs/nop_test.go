package ecs

import (
	"time"

	"github.com/phanxgames/demoncoin"
)

type nopPresenter struct{}

func (nopPresenter) Spawn(demoncoin.Entity) {}
func (nopPresenter) Destroy(demoncoin.EntityID) {}
func (nopPresenter) SetText(demoncoin.EntityID, string) {}
func (nopPresenter) SetTexture(demoncoin.EntityID, string) {}
func (nopPresenter) SetVisible(demoncoin.EntityID, bool) {}
func (nopPresenter) SetInteractive(demoncoin.EntityID, bool) {}
func (nopPresenter) SetAlpha(demoncoin.EntityID, float64) {}
func (nopPresenter) SetPosition(demoncoin.EntityID, float64, float64) {}
func (nopPresenter) SetRotation(demoncoin.EntityID, float64) {}
func (nopPresenter) SetScale(demoncoin.EntityID, float64) {}
func (nopPresenter) Position(demoncoin.EntityID) (float64, float64, bool) { return 0, 0, false }
func (nopPresenter) Tween(demoncoin.EntityID, demoncoin.Tween) {}
func (nopPresenter) KillTweens(demoncoin.EntityID) {}
func (nopPresenter) Drop(demoncoin.EntityID, float64, demoncoin.Event) {}
func (nopPresenter) Emit(demoncoin.Particles) {}
func (nopPresenter) PlaySound(string) {}
func (nopPresenter) After(time.Duration, demoncoin.Event) demoncoin.TimerID { return 0 }
func (nopPresenter) Every(time.Duration, demoncoin.Event) demoncoin.TimerID { return 0 }
func (nopPresenter) Cancel(demoncoin.TimerID) {}
