package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeeStatementPDF(t *testing.T) {
	raw, err := FeeStatementPDF(Statement{
		StudentName: "Ananya Sharma",
		StudentID:   "stu-1001",
		Program:     "B.Tech CSE",
		Year:        "2",
		FeesDue:     1500,
		Currency:    "INR",
		Payments: []StatementRow{
			{Date: "2024-12-01", Method: "UPI", Amount: 500},
		},
	})
	require.NoError(t, err)

	require.NotEmpty(t, raw)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestFeeStatementPDFNoPayments(t *testing.T) {
	raw, err := FeeStatementPDF(Statement{
		StudentName: "Rahul Verma",
		StudentID:   "stu-1002",
		Currency:    "INR",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}
