package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/partflow/atp/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format string
}

// Generate writes the availability response in the specified format
func Generate(response *dto.AtpResponse, config Config) error {
	switch config.Format {
	case "", "text":
		return generateTextOutput(response)
	case "json":
		return generateJSONOutput(response)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func generateTextOutput(response *dto.AtpResponse) error {
	fmt.Printf("Availability Check Result\n")
	fmt.Printf("=========================\n\n")
	fmt.Printf("Order ID: %s\n", response.OrderID)
	fmt.Printf("Status:   %s\n\n", response.OverallStatus)

	if len(response.Results) == 0 {
		return nil
	}

	fmt.Printf("%-12s %-12s %-10s %-10s %-12s %-12s %s\n",
		"Requested", "Fulfilled", "Req Qty", "Conf Qty", "Warehouse", "Ship Date", "Message")
	fmt.Printf("%-12s %-12s %-10s %-10s %-12s %-12s %s\n",
		"------------", "------------", "----------", "----------", "------------", "------------", "-------")

	for _, result := range response.Results {
		fulfilled := "-"
		if result.FulfilledProductID != "" {
			fulfilled = string(result.FulfilledProductID)
		}
		warehouse := "-"
		if result.SourceWarehouseID != "" {
			warehouse = string(result.SourceWarehouseID)
		}
		shipDate := "-"
		if result.EstimatedShipDate != nil {
			shipDate = result.EstimatedShipDate.Format("2006-01-02")
		}
		fmt.Printf("%-12s %-12s %-10d %-10d %-12s %-12s %s\n",
			result.OriginalProductID,
			fulfilled,
			result.RequestedQuantity,
			result.ConfirmedQuantity,
			warehouse,
			shipDate,
			result.Message)
	}

	return nil
}

type jsonResult struct {
	OriginalProductID  string  `json:"originalProductId"`
	FulfilledProductID *string `json:"fulfilledProductId"`
	RequestedQuantity  int64   `json:"requestedQuantity"`
	ConfirmedQuantity  int64   `json:"confirmedQuantity"`
	SourceWarehouseID  *string `json:"sourceWarehouseId"`
	EstimatedShipDate  *string `json:"estimatedShipDate"`
	Message            string  `json:"message"`
}

type jsonResponse struct {
	OrderID       string       `json:"orderId"`
	OverallStatus string       `json:"overallStatus"`
	Results       []jsonResult `json:"results"`
}

func generateJSONOutput(response *dto.AtpResponse) error {
	out := jsonResponse{
		OrderID:       response.OrderID,
		OverallStatus: response.OverallStatus.String(),
		Results:       make([]jsonResult, 0, len(response.Results)),
	}
	for _, result := range response.Results {
		item := jsonResult{
			OriginalProductID: string(result.OriginalProductID),
			RequestedQuantity: int64(result.RequestedQuantity),
			ConfirmedQuantity: int64(result.ConfirmedQuantity),
			Message:           result.Message,
		}
		if result.FulfilledProductID != "" {
			id := string(result.FulfilledProductID)
			item.FulfilledProductID = &id
		}
		if result.SourceWarehouseID != "" {
			id := string(result.SourceWarehouseID)
			item.SourceWarehouseID = &id
		}
		if result.EstimatedShipDate != nil {
			date := result.EstimatedShipDate.Format("2006-01-02")
			item.EstimatedShipDate = &date
		}
		out.Results = append(out.Results, item)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
