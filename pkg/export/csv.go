// Package export renders directory data into downloadable documents.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// RosterRow is one student line of a course roster export.
type RosterRow struct {
	StudentID string
	Name      string
	Program   string
	Year      string
}

// RosterCSV renders a course roster as CSV.
func RosterCSV(courseCode, courseTitle string, rows []RosterRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)

	if err := writer.Write([]string{"course_code", "course_title", "student_id", "name", "program", "year"}); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range rows {
		record := []string{courseCode, courseTitle, row.StudentID, row.Name, row.Program, row.Year}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// PaymentsCSV renders a payment history as CSV.
func PaymentsCSV(studentID string, rows []StatementRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)

	if err := writer.Write([]string{"student_id", "date", "method", "amount"}); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range rows {
		record := []string{studentID, row.Date, row.Method, strconv.Itoa(row.Amount)}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
