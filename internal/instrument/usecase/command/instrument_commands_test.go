package command_test

import (
	"errors"
	"testing"

	"github.com/yangliu6605/react-ems/internal/instrument/domain"
	"github.com/yangliu6605/react-ems/internal/instrument/repository"
	"github.com/yangliu6605/react-ems/internal/instrument/usecase/command"
)

func TestCreateInstrumentDefaultsAndValidation(t *testing.T) {
	repo := repository.NewMemoryInstrumentRepository()
	h := command.NewCreateInstrumentHandler(repo)

	instrument, err := h.Handle(command.CreateInstrumentCommand{
		ID:    "SKU-0001",
		Name:  "Fender Stratocaster",
		Stock: 12,
		Price: 899,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if instrument.Status != domain.StatusActive {
		t.Errorf("status = %q, want default active", instrument.Status)
	}

	cases := []struct {
		name string
		cmd  command.CreateInstrumentCommand
	}{
		{"missing id", command.CreateInstrumentCommand{Name: "x"}},
		{"missing name", command.CreateInstrumentCommand{ID: "SKU-0002"}},
		{"negative stock", command.CreateInstrumentCommand{ID: "SKU-0002", Name: "x", Stock: -1}},
		{"negative reorder level", command.CreateInstrumentCommand{ID: "SKU-0002", Name: "x", ReorderLevel: -1}},
		{"negative price", command.CreateInstrumentCommand{ID: "SKU-0002", Name: "x", Price: -1}},
		{"bad status", command.CreateInstrumentCommand{ID: "SKU-0002", Name: "x", Status: "retired"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := h.Handle(tc.cmd); err == nil {
				t.Error("expected validation error")
			}
			var verr *domain.ValidationError
			if _, err := h.Handle(tc.cmd); !errors.As(err, &verr) {
				t.Errorf("err = %v, want ValidationError", err)
			}
		})
	}
}

func TestCreateInstrumentDuplicateSKU(t *testing.T) {
	repo := repository.NewMemoryInstrumentRepository()
	h := command.NewCreateInstrumentHandler(repo)

	cmd := command.CreateInstrumentCommand{ID: "SKU-0001", Name: "Strat"}
	if _, err := h.Handle(cmd); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := h.Handle(cmd); !errors.Is(err, domain.ErrDuplicateSKU) {
		t.Errorf("err = %v, want ErrDuplicateSKU", err)
	}
}

func TestUpdateInstrumentPartialMerge(t *testing.T) {
	repo := repository.NewMemoryInstrumentRepository()
	create := command.NewCreateInstrumentHandler(repo)
	update := command.NewUpdateInstrumentHandler(repo)

	_, err := create.Handle(command.CreateInstrumentCommand{
		ID:       "SKU-0001",
		Name:     "Fender Stratocaster",
		Category: "Electric Guitars",
		Brand:    "Fender",
		Stock:    12,
		Price:    899,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newPrice := 949.0
	instrument, err := update.Handle(command.UpdateInstrumentCommand{
		ID:    "SKU-0001",
		Price: &newPrice,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if instrument.Price != 949 {
		t.Errorf("price = %v, want 949", instrument.Price)
	}
	// Fields without a value stay as they were.
	if instrument.Name != "Fender Stratocaster" || instrument.Stock != 12 || instrument.Brand != "Fender" {
		t.Errorf("untouched fields changed: %+v", instrument)
	}
}

func TestUpdateInstrumentStockIsASilentCorrection(t *testing.T) {
	repo := repository.NewMemoryInstrumentRepository()
	create := command.NewCreateInstrumentHandler(repo)
	update := command.NewUpdateInstrumentHandler(repo)

	if _, err := create.Handle(command.CreateInstrumentCommand{ID: "SKU-0001", Name: "Strat", Stock: 10}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newStock := 3
	instrument, err := update.Handle(command.UpdateInstrumentCommand{ID: "SKU-0001", Stock: &newStock})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if instrument.Stock != 3 {
		t.Errorf("stock = %d, want 3", instrument.Stock)
	}

	negative := -1
	if _, err := update.Handle(command.UpdateInstrumentCommand{ID: "SKU-0001", Stock: &negative}); err == nil {
		t.Error("expected error for negative stock")
	}
}

func TestUpdateInstrumentNotFound(t *testing.T) {
	repo := repository.NewMemoryInstrumentRepository()
	update := command.NewUpdateInstrumentHandler(repo)

	name := "x"
	if _, err := update.Handle(command.UpdateInstrumentCommand{ID: "SKU-MISSING", Name: &name}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteInstrument(t *testing.T) {
	repo := repository.NewMemoryInstrumentRepository()
	create := command.NewCreateInstrumentHandler(repo)
	del := command.NewDeleteInstrumentHandler(repo)

	if _, err := create.Handle(command.CreateInstrumentCommand{ID: "SKU-0001", Name: "Strat"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := del.Handle(command.DeleteInstrumentCommand{ID: "SKU-0001"}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := del.Handle(command.DeleteInstrumentCommand{ID: "SKU-0001"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
