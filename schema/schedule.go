package schema

import "heath-crm-backend/models"

// DecodeScheduleRow decodes the fixed 8-column schedule row: id, title, date,
// startTime, endTime, type, customerId, notes. ok is false when the id cell
// is empty.
func DecodeScheduleRow(row Row) (s *models.Schedule, ok bool) {
	id := cellString(row, 0)
	if id == "" {
		return nil, false
	}

	typ := cellString(row, 5)
	if typ == "" {
		typ = models.ScheduleTypeOther
	}

	return &models.Schedule{
		ID:         id,
		Title:      cellString(row, 1),
		Date:       cellString(row, 2),
		StartTime:  cellString(row, 3),
		EndTime:    cellString(row, 4),
		Type:       typ,
		CustomerID: cellString(row, 6),
		Notes:      cellString(row, 7),
	}, true
}

func EncodeScheduleRow(s *models.Schedule) Row {
	typ := s.Type
	if typ == "" {
		typ = models.ScheduleTypeOther
	}
	return Row{
		s.ID,
		s.Title,
		s.Date,
		s.StartTime,
		s.EndTime,
		typ,
		s.CustomerID,
		s.Notes,
	}
}
