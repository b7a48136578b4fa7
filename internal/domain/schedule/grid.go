package schedule

import "time"

// BuildMonthGrid arma las celdas para la vista mensual de la agenda.
// Devuelve primero un placeholder nil por cada día de la semana anterior
// al día 1 (domingo = índice 0), y luego una celda por cada día del mes
// en orden ascendente. No agrega padding al final: la última fila de la
// grilla puede quedar corta.
//
// Solo se usan el año y el mes de ref; la zona horaria se conserva.
func BuildMonthGrid(ref time.Time) []*time.Time {
	year, month, _ := ref.Date()
	loc := ref.Location()

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	// Día 0 del mes siguiente = último día de este mes.
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
	daysInMonth := lastDay.Day()

	startingWeekday := int(firstDay.Weekday()) // 0=domingo .. 6=sábado

	cells := make([]*time.Time, 0, startingWeekday+daysInMonth)
	for i := 0; i < startingWeekday; i++ {
		cells = append(cells, nil)
	}
	for day := 1; day <= daysInMonth; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, loc)
		cells = append(cells, &d)
	}

	return cells
}
