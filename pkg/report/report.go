// Package report renders the execution report (every article and custom
// action with its month, channel and status) as a spreadsheet.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"lmp/entities"
	"lmp/pkg/planner/service"
	"lmp/pkg/status"
)

const sheet = "Relatório"

type row struct {
	month   string
	channel string
	title   string
	status  entities.ContentStatus
}

func Build(doc entities.PlanDocument, st service.Stats) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheet, "A1", &[]any{"Métricas de Execução"}); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A2", &[]any{"Feito", st.Done, "Pendente", st.Total - st.Done, "Execução (%)", st.Percent}); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A4", &[]any{"Mês", "Canal / Categoria", "Iniciativa", "Status"}); err != nil {
		return nil, err
	}

	r := 5
	for _, it := range flatten(doc) {
		cell := fmt.Sprintf("A%d", r)
		if err := f.SetSheetRow(sheet, cell, &[]any{it.month, it.channel, it.title, status.Label(it.status)}); err != nil {
			return nil, err
		}
		r++
	}

	_ = f.SetColWidth(sheet, "A", "B", 22)
	_ = f.SetColWidth(sheet, "C", "C", 60)
	return f, nil
}

// flatten lists articles in catalog order with each month's custom actions
// appended after its articles, mirroring the on-screen report.
func flatten(doc entities.PlanDocument) []row {
	var out []row
	for _, m := range doc.Plan {
		for _, a := range m.Articles {
			out = append(out, row{month: m.Month, channel: a.Category, title: a.Title, status: a.Status})
		}
		for _, ca := range doc.CustomActions {
			if ca.MonthID == m.ID {
				out = append(out, row{month: m.Month, channel: ca.Channel, title: ca.Title, status: ca.Status})
			}
		}
	}
	return out
}
