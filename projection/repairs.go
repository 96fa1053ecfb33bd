package projection

// RepairItem is one planned renovation line item. The summed cost feeds
// Inputs.InitialRepairs.
type RepairItem struct {
	Room        string
	Description string
	Cost        float64
}

// Rooms lists the areas a repair can be attributed to.
var Rooms = []string{
	"Kitchen", "Bathroom", "Bedroom", "Living Room",
	"Dining Room", "Basement", "Attic", "Roof",
	"HVAC", "Plumbing", "Electrical", "Exterior",
	"Flooring", "Paint", "Landscaping", "Other",
}

// TotalRepairCost sums the cost of every repair item.
func TotalRepairCost(items []RepairItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Cost
	}
	return total
}
