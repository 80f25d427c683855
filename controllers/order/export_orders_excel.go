package orderControllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopsail/storefront-api/tenant"
)

// GET /orders/export-excel (API-key protected, seller-id header required)
// Streams an xlsx workbook of the caller's orders; the configured admin
// identity gets every tenant's orders.
func ExportOrdersToExcel(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := strings.TrimSpace(c.GetHeader(tenant.Header))
		if callerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seller id header required"})
			return
		}

		orders, err := listOrders(c.Request.Context(), db, callerID)
		if err != nil {
			log.Println("❌ Failed to fetch orders for export:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderID", "SellerID", "Customer", "Email", "Items",
			"Subtotal", "GST", "Delivery", "Total",
			"PaymentMethod", "PaymentStatus", "TransactionID", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			var lines []string
			for _, item := range o.Items {
				lines = append(lines, fmt.Sprintf("%s x%d @ %.2f", item.Name, item.Quantity, item.Price))
			}

			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID.Hex())
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(o.CustomerName)
			row.AddCell().SetValue(o.CustomerEmail)
			row.AddCell().SetValue(strings.Join(lines, "; "))
			row.AddCell().SetValue(o.Totals.Subtotal)
			row.AddCell().SetValue(o.Totals.GST)
			row.AddCell().SetValue(o.Totals.Delivery)
			row.AddCell().SetValue(o.Totals.Total)
			row.AddCell().SetValue(o.Payment.Method)
			row.AddCell().SetValue(o.Payment.Status)
			row.AddCell().SetValue(o.Payment.TransactionID)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", `attachment; filename="orders.xlsx"`)
		if err := file.Write(c.Writer); err != nil {
			log.Println("❌ Failed to write Excel export:", err)
		}
	}
}
