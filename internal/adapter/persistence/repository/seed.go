package repository

import (
	"time"

	"pactle_quotations/internal/domain/entities"
)

// SeedDemoData loads the demo dataset into a memory repository. The records
// mirror the fixtures the dashboard ships with so local runs and tests share
// one well-known world.
func SeedDemoData(r *QuotationMemoryRepository) {
	now := time.Now().UTC()

	r.Put(entities.Quotation{
		ID:          "Q-101",
		Client:      "Acme Corp",
		Amount:      36034.20,
		Status:      entities.QuotationStatusPending,
		LastUpdated: now,
		Description: "Need quote for 500m 25mm corr pipe, 40 medium fan boxes, 600m 20mm pvc med.",
		StatusHistory: []entities.StatusHistoryEntry{
			{Status: entities.QuotationStatusPending, ChangedBy: "System Intake", ChangedAt: now.Add(-48 * time.Hour)},
		},
		Comments: []entities.Comment{
			{
				ID:        1,
				Author:    "John Doe",
				Role:      entities.RoleSalesRep,
				Text:      "Client requested discount.",
				Timestamp: now.Add(-24 * time.Hour),
				Replies: []entities.Reply{
					{
						ID:        1,
						Author:    "Jane Smith",
						Role:      entities.RoleManager,
						Text:      "Approved 5% discount.",
						Timestamp: now.Add(-12 * time.Hour),
					},
				},
			},
		},
	})

	r.Put(entities.Quotation{
		ID:          "Q-102",
		Client:      "BuildTech Industries",
		Amount:      52000.00,
		Status:      entities.QuotationStatusApproved,
		LastUpdated: now.Add(-48 * time.Hour),
		Description: "Large order for GI conduits and fan boxes",
		StatusHistory: []entities.StatusHistoryEntry{
			{Status: entities.QuotationStatusPending, ChangedBy: "System Intake", ChangedAt: now.Add(-96 * time.Hour)},
			{Status: entities.QuotationStatusApproved, ChangedBy: "Jane Smith", ChangedAt: now.Add(-48 * time.Hour)},
		},
		Comments: []entities.Comment{},
	})

	r.Put(entities.Quotation{
		ID:              "Q-103",
		Client:          "Phoenix Constructions",
		Amount:          18500.75,
		Status:          entities.QuotationStatusRejected,
		LastUpdated:     now.Add(-72 * time.Hour),
		Description:     "Small electrical components order",
		RejectionReason: "Pricing not competitive",
		StatusHistory: []entities.StatusHistoryEntry{
			{Status: entities.QuotationStatusPending, ChangedBy: "System Intake", ChangedAt: now.Add(-120 * time.Hour)},
			{Status: entities.QuotationStatusRejected, ChangedBy: "Jane Smith", ChangedAt: now.Add(-72 * time.Hour), Reason: "Pricing not competitive"},
		},
		Comments: []entities.Comment{
			{
				ID:        1,
				Author:    "Sarah Johnson",
				Role:      entities.RoleSalesRep,
				Text:      "Client asked for better pricing",
				Timestamp: now.Add(-72 * time.Hour),
				Replies:   []entities.Reply{},
			},
		},
	})

	r.Put(entities.Quotation{
		ID:          "Q-104",
		Client:      "Metro Developers",
		Amount:      89200.50,
		Status:      entities.QuotationStatusPending,
		LastUpdated: now.Add(-12 * time.Hour),
		Description: "Bulk order for commercial project",
		StatusHistory: []entities.StatusHistoryEntry{
			{Status: entities.QuotationStatusPending, ChangedBy: "System Intake", ChangedAt: now.Add(-12 * time.Hour)},
		},
		Comments: []entities.Comment{},
	})

	r.Put(entities.Quotation{
		ID:          "Q-105",
		Client:      "Summit Engineering",
		Amount:      45600.00,
		Status:      entities.QuotationStatusApproved,
		LastUpdated: now.Add(-120 * time.Hour),
		Description: "Industrial piping and conduits",
		LineItems: []entities.LineItem{
			{Sr: 1, Item: "25mm corrugated pipe", SKU: "CP-25", Qty: 500, Unit: "m", Rate: 42.50, Amount: 21250.00},
			{Sr: 2, Item: "Medium fan box", SKU: "FB-M", Qty: 40, Unit: "pc", Rate: 185.00, Amount: 7400.00},
		},
		Subtotal: 28650.00,
		GST:      5157.00,
		Freight:  1100.00,
		StatusHistory: []entities.StatusHistoryEntry{
			{Status: entities.QuotationStatusPending, ChangedBy: "System Intake", ChangedAt: now.Add(-168 * time.Hour)},
			{Status: entities.QuotationStatusApproved, ChangedBy: "Jane Smith", ChangedAt: now.Add(-120 * time.Hour)},
		},
		Comments: []entities.Comment{},
	})
}
