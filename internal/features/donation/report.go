package donation

import (
	"bytes"
	"context"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportBuilder renders a temple's donations as an XLSX workbook.
type ReportBuilder struct {
	Repo DonationRepository
}

func NewReportBuilder(repo DonationRepository) *ReportBuilder {
	return &ReportBuilder{Repo: repo}
}

var reportColumns = []string{
	"Donor Name", "Seva Name", "Payment Method", "Amount",
	"Village", "Tehsil", "District", "State", "Country",
	"Contact", "Created At",
}

func (b *ReportBuilder) Build(ctx context.Context, templeID primitive.ObjectID) (*bytes.Buffer, error) {
	donations, err := b.Repo.FindByTemple(ctx, templeID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Donations"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, col := range reportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, d := range donations {
		values := []interface{}{
			d.DonorName, d.SevaName, d.PaymentMethod, d.DonationAmount,
			d.Village, d.Tehsil, d.District, d.State, d.Country,
			d.ContactInfo, d.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	for i := range reportColumns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 15)
	}

	return f.WriteToBuffer()
}
