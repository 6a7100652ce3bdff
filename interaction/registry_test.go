package interaction

import (
	"testing"

	"github.com/KyleBlankRollins/meowzer-sub000/geo"
)

func TestPlaceNeedPublishesEvent(t *testing.T) {
	r := NewRegistry()
	var got NeedPlacedEvent
	r.Events.NeedPlaced.Subscribe(func(e NeedPlacedEvent) { got = e })

	id := r.PlaceNeed(NeedFoodFancy, geo.Position{X: 1, Y: 2})
	if got.Need.ID != id || got.Need.Kind != NeedFoodFancy {
		t.Fatalf("expected NeedPlaced event for %s, got %+v", id, got)
	}
}

func TestNeedsNearSortedAscendingAndClosedInterval(t *testing.T) {
	r := NewRegistry()
	r.PlaceNeed(NeedWater, geo.Position{X: 100, Y: 0})
	r.PlaceNeed(NeedWater, geo.Position{X: 50, Y: 0})
	r.PlaceNeed(NeedWater, geo.Position{X: 150, Y: 0}) // exactly at radius

	near := r.NeedsNear(geo.Position{}, 150)
	if len(near) != 3 {
		t.Fatalf("expected all 3 needs within closed radius, got %d", len(near))
	}
	if near[0].Position.X != 50 || near[1].Position.X != 100 || near[2].Position.X != 150 {
		t.Fatalf("expected ascending distance order, got %+v", near)
	}
}

func TestRemoveUnknownIDReturnsStimulusNotFound(t *testing.T) {
	r := NewRegistry()
	if err := r.Remove("nope"); err == nil {
		t.Fatal("expected StimulusNotFound")
	}
}

func TestSetLaserActivateMoveDeactivate(t *testing.T) {
	r := NewRegistry()
	var activated, moved, deactivated int
	r.Events.LaserActivated.Subscribe(func(LaserActivatedEvent) { activated++ })
	r.Events.LaserMoved.Subscribe(func(LaserMovedEvent) { moved++ })
	r.Events.LaserDeactivated.Subscribe(func(LaserDeactivatedEvent) { deactivated++ })

	p1 := geo.Position{X: 1, Y: 1}
	r.SetLaser(&p1)
	p2 := geo.Position{X: 2, Y: 2}
	r.SetLaser(&p2)
	r.SetLaser(nil)

	if activated != 1 || moved != 1 || deactivated != 1 {
		t.Fatalf("expected 1/1/1 activate/move/deactivate, got %d/%d/%d", activated, moved, deactivated)
	}
	if _, ok := r.Laser(); ok {
		t.Fatal("expected no active laser after deactivation")
	}
}

func TestMoveYarnPublishesYarnMoved(t *testing.T) {
	r := NewRegistry()
	id := r.PlaceYarn(geo.Position{})
	var got YarnMovedEvent
	r.Events.YarnMoved.Subscribe(func(e YarnMovedEvent) { got = e })

	if err := r.MoveYarn(id, geo.Position{X: 5, Y: 5}, YarnRolling, nil); err != nil {
		t.Fatalf("MoveYarn: %v", err)
	}
	if got.Yarn.State != YarnRolling || got.Yarn.Position.X != 5 {
		t.Fatalf("unexpected yarnMoved payload: %+v", got)
	}
}
