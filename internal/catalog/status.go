package catalog

import (
	"fmt"

	"github.com/mealpoint/nutriscore/schema"
)

// PrintCatalogStatus prints catalog status information to stdout.
func PrintCatalogStatus(status schema.CatalogStatus) {
	fmt.Printf("Catalog Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Foods: %d\n", status.TotalFoods)
	if status.TableSizeBytes > 0 {
		fmt.Printf("Database Size: %d bytes\n", status.TableSizeBytes)
	}
}
