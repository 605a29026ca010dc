package usecase

import (
	"context"
	"fmt"

	nrpkg "github.com/piresc/freightdesk/internal/pkg/newrelic"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const statementSheet = "Sheet1"

var lineLabels = map[string]string{
	"freight":       "Frete",
	"abastecimento": "Abastecimento",
	"outro_insumo":  "Outro insumo",
}

// Statement renders a payment as a workbook: a header block, one row per
// settled line and the totals. Purchases are shown as deductions.
func (uc *PaymentUC) Statement(ctx context.Context, id int64) ([]byte, error) {
	p, err := uc.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lines, err := uc.paymentRepo.Lines(ctx, p)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"Pagamento", p.ID},
		{"Motorista", p.DriverName},
		{"CPF", p.DriverCPF},
		{"Período", p.DateRange},
		{"Observações", p.Notes},
		{},
		{"Tipo", "ID", "Data", "Descrição", "Valor"},
	}

	gross, deductions := decimal.Zero, decimal.Zero
	for _, l := range lines {
		value := l.TotalValue
		if l.Kind == "freight" {
			gross = gross.Add(value)
		} else {
			deductions = deductions.Add(value)
			value = value.Neg()
		}
		rows = append(rows, []interface{}{
			lineLabels[l.Kind], l.ID, l.Date.Display(), l.Description, value.InexactFloat64(),
		})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Fretes", "", "", "", gross.InexactFloat64()},
		[]interface{}{"Descontos", "", "", "", deductions.Neg().InexactFloat64()},
		[]interface{}{"Líquido", "", "", "", gross.Sub(deductions).InexactFloat64()},
		[]interface{}{"Valor pago", "", "", "", p.TotalValue.InexactFloat64()},
	)

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(statementSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write statement row: %w", err)
		}
	}
	if err := f.SetColWidth(statementSheet, "D", "D", 40); err != nil {
		return nil, fmt.Errorf("failed to size statement columns: %w", err)
	}

	var out []byte
	err = nrpkg.WithSegment(ctx, "payments.statement.render", func() error {
		buf, err := f.WriteToBuffer()
		if err != nil {
			return fmt.Errorf("failed to render statement: %w", err)
		}
		out = buf.Bytes()
		return nil
	})
	return out, err
}
