package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCSV(t *testing.T, raw []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestRosterCSV(t *testing.T) {
	raw, err := RosterCSV("CS101", "Data Structures", []RosterRow{
		{StudentID: "stu-1001", Name: "Ananya Sharma", Program: "B.Tech CSE", Year: "2"},
		{StudentID: "stu-1002", Name: "Rahul Verma", Program: "B.Sc Physics", Year: "1"},
	})
	require.NoError(t, err)

	records := parseCSV(t, raw)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"course_code", "course_title", "student_id", "name", "program", "year"}, records[0])
	assert.Equal(t, []string{"CS101", "Data Structures", "stu-1001", "Ananya Sharma", "B.Tech CSE", "2"}, records[1])
	assert.Equal(t, "stu-1002", records[2][2])
}

func TestRosterCSVEmptyRoster(t *testing.T) {
	raw, err := RosterCSV("HS103", "Psychology Basics", nil)
	require.NoError(t, err)

	records := parseCSV(t, raw)
	assert.Len(t, records, 1)
}

func TestPaymentsCSV(t *testing.T) {
	raw, err := PaymentsCSV("stu-1001", []StatementRow{
		{Date: "2024-12-01", Method: "UPI", Amount: 500},
		{Date: "2025-01-15", Method: "Card", Amount: 1000},
	})
	require.NoError(t, err)

	records := parseCSV(t, raw)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"student_id", "date", "method", "amount"}, records[0])
	assert.Equal(t, []string{"stu-1001", "2024-12-01", "UPI", "500"}, records[1])
	assert.Equal(t, "1000", records[2][3])
}
