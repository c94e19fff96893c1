package engine

import (
	"fmt"
	"strings"

	"github.com/tatianab/wagon-trail/internal/models"
)

// Column widths for the supplies table.
const (
	supplyNameWidth = 16
	supplyQtyWidth  = 10
)

// CheckSupplies lists the wagon's inventory. Read-only; any response closes
// the dialog.
type CheckSupplies struct {
	sim *Simulation
}

func NewCheckSupplies(sim *Simulation) *CheckSupplies {
	return &CheckSupplies{sim: sim}
}

func (f *CheckSupplies) Render() string {
	var b strings.Builder
	b.WriteString("Your supplies:\n\n")
	for _, item := range f.sim.Vehicle().Inventory {
		b.WriteString(FormatSupplyLine(item))
		b.WriteByte('\n')
	}
	b.WriteString("\nPress ENTER to return.")
	return b.String()
}

func (f *CheckSupplies) HandleInput(string) Transition {
	return Close()
}

// FormatSupplyLine renders one inventory row with fixed column widths.
// Cash shows as currency; everything else as a whole count.
func FormatSupplyLine(item models.InventoryItem) string {
	var qty string
	if item.Kind == models.ItemCash {
		qty = fmt.Sprintf("$%.2f", item.Quantity)
	} else {
		qty = fmt.Sprintf("%.0f", item.Quantity)
	}
	return fmt.Sprintf("%-*s%*s", supplyNameWidth, item.Name, supplyQtyWidth, qty)
}
