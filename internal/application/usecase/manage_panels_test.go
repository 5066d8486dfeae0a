package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/tiles/internal/domain/entity"
)

func parentID(id entity.PanelID) *entity.PanelID {
	return &id
}

func TestManagePanelsUseCase_Split(t *testing.T) {
	uc := NewManagePanelsUseCase()
	reg := entity.NewRegistry()

	out, err := uc.Split(context.Background(), SplitPanelInput{Registry: reg, Target: entity.RootID, Axis: entity.AxisVertical})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Applied || out.Moved != 1 || out.Created != 2 {
		t.Fatalf("output = %+v, want applied moved=1 created=2", out)
	}
}

func TestManagePanelsUseCase_Split_StaleTargetIsNoOp(t *testing.T) {
	uc := NewManagePanelsUseCase()
	reg := entity.NewRegistry()

	out, err := uc.Split(context.Background(), SplitPanelInput{Registry: reg, Target: 7, Axis: entity.AxisVertical})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Applied {
		t.Fatalf("split of unknown panel should not apply")
	}
	if reg.Allocator().Issued() != 0 {
		t.Fatalf("no identifier should be allocated")
	}
}

func TestManagePanelsUseCase_NilRegistry(t *testing.T) {
	uc := NewManagePanelsUseCase()

	if _, err := uc.Split(context.Background(), SplitPanelInput{}); !errors.Is(err, ErrNilRegistry) {
		t.Fatalf("split err = %v, want ErrNilRegistry", err)
	}
	if _, err := uc.Close(context.Background(), ClosePanelInput{}); !errors.Is(err, ErrNilRegistry) {
		t.Fatalf("close err = %v, want ErrNilRegistry", err)
	}
}

func TestManagePanelsUseCase_Close(t *testing.T) {
	uc := NewManagePanelsUseCase()
	ctx := context.Background()
	reg := entity.NewRegistry()
	reg.Split(entity.RootID, entity.AxisHorizontal)

	out, err := uc.Close(ctx, ClosePanelInput{Registry: reg, Parent: parentID(entity.RootID), Target: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Applied || out.Emptied {
		t.Fatalf("output = %+v, want applied and not emptied", out)
	}

	out, err = uc.Close(ctx, ClosePanelInput{Registry: reg, Target: entity.RootID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Applied || !out.Emptied {
		t.Fatalf("output = %+v, want applied and emptied", out)
	}
}

func TestManagePanelsUseCase_Apply(t *testing.T) {
	uc := NewManagePanelsUseCase()
	ctx := context.Background()
	reg := entity.NewRegistry()

	applied, err := uc.Apply(ctx, reg, Action{Kind: ActionSplitHorizontal, Address: Address{ID: entity.RootID}})
	if err != nil || !applied {
		t.Fatalf("split: applied=%v err=%v", applied, err)
	}
	root, _ := reg.Lookup(entity.RootID)
	if root.Axis != entity.AxisHorizontal {
		t.Fatalf("root axis = %s, want horizontal", root.Axis)
	}

	// Stale address from the previous pass: panel 0 is a split now.
	applied, err = uc.Apply(ctx, reg, Action{Kind: ActionSplitVertical, Address: Address{ID: entity.RootID}})
	if err != nil || applied {
		t.Fatalf("stale split: applied=%v err=%v", applied, err)
	}

	applied, err = uc.Apply(ctx, reg, Action{Kind: ActionClose, Address: Address{ID: 2, Parent: parentID(entity.RootID)}})
	if err != nil || !applied {
		t.Fatalf("close: applied=%v err=%v", applied, err)
	}

	_, err = uc.Apply(ctx, reg, Action{Kind: "explode"})
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("err = %v, want ErrUnknownAction", err)
	}
}

func TestManagePanelsUseCase_BindQueuesUntilFlush(t *testing.T) {
	uc := NewManagePanelsUseCase()
	d := NewDispatcher()
	reg := entity.NewRegistry()

	d.Enqueue(uc.Bind(reg, Action{Kind: ActionSplitVertical, Address: Address{ID: entity.RootID}}))
	if root, _ := reg.Lookup(entity.RootID); root.IsSplit() {
		t.Fatalf("registry mutated before flush")
	}

	d.Flush(context.Background())
	if root, _ := reg.Lookup(entity.RootID); !root.IsSplit() {
		t.Fatalf("registry not mutated by flush")
	}
}
