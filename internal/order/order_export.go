package order

import (
	"io"

	"github.com/tealeg/xlsx"
)

const (
	ExportFilename    = "orders.xlsx"
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var exportHeaders = []string{
	"Order No", "Date", "Customer ID", "Customer", "Payment",
	"Total Weight", "CGST", "SGST", "Total",
}

func writeWorkbook(orders []Order, w io.Writer) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return err
	}

	header := sheet.AddRow()
	for _, h := range exportHeaders {
		header.AddCell().SetValue(h)
	}

	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(o.OrderNo)
		row.AddCell().SetValue(o.Date)
		row.AddCell().SetValue(o.CustID)
		row.AddCell().SetValue(o.CustomerName)
		row.AddCell().SetValue(o.Payment)
		row.AddCell().SetFloat(o.TotalWeight.InexactFloat64())
		row.AddCell().SetFloat(o.CGST.InexactFloat64())
		row.AddCell().SetFloat(o.SGST.InexactFloat64())
		row.AddCell().SetFloat(o.Total.InexactFloat64())
	}

	return file.Write(w)
}
