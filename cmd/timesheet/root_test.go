package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const punchesJSON = `[
	{"id": 1, "user": {"id": 1, "name": "Alice Smith", "employee_id": "EMP-1"}, "date": "2024-01-15", "punchin_time": "09:00:00", "punchout_time": "12:00:00"},
	{"id": 2, "user": {"id": 1, "name": "Alice Smith", "employee_id": "EMP-1"}, "date": "2024-01-15", "punchin_time": "13:00:00", "punchout_time": "17:30:00"},
	{"id": 3, "user": {"id": 2, "name": "Bob Jones", "employee_id": "EMP-2"}, "date": "2024-01-15", "punchin_time": "10:00:00", "punchout_time": null}
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAggregateCommand(t *testing.T) {
	path := writeFile(t, "punches.json", punchesJSON)

	out, err := execute(t, "", "aggregate", path, "--sort-by", "production_time", "--sort-order", "desc")
	require.NoError(t, err)

	var rows []timesheet.AggregatedRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Alice Smith", rows[0].User.Name)
	assert.Equal(t, 450.0, rows[0].TotalWorkMinutes)
	assert.True(t, rows[1].HasIncompletePunch)
}

func TestAggregateCommand_StdinAndSearch(t *testing.T) {
	out, err := execute(t, punchesJSON, "aggregate", "-", "--search", "bob")
	require.NoError(t, err)

	var rows []timesheet.AggregatedRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, timesheet.ID("2"), rows[0].UserID)
}

func TestAggregateCommand_NonArrayInput(t *testing.T) {
	out, err := execute(t, `{"not": "an array"}`, "aggregate", "-")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestAggregateCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "", "aggregate", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	punches := writeFile(t, "punches.json", punchesJSON)
	absent := writeFile(t, "absent.json", `[{"id": 3, "name": "Carol White"}]`)
	leaves := writeFile(t, "leaves.json", `[{"user_id": 3, "leave_type": "Sick Leave", "from_date": "2024-01-15", "to_date": "2024-01-15", "status": "approved"}]`)

	out, err := execute(t, "", "export", punches, "--date", "2024-01-15", "--absent", absent, "--leaves", leaves)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], `"No.","Date"`))
	assert.Contains(t, lines[3], `"On Leave","Sick Leave (2024-01-15 to 2024-01-15) - approved"`)
}

func TestStatsCommand(t *testing.T) {
	punches := writeFile(t, "punches.json", punchesJSON)
	absent := writeFile(t, "absent.json", `[{"id": 3, "name": "Carol White"}, {"id": 4, "name": "Dan"}]`)

	out, err := execute(t, "", "stats", punches, "--absent", absent)
	require.NoError(t, err)

	assert.Contains(t, out, "Employees:       4")
	assert.Contains(t, out, "Attendance rate: 50%")
	assert.Contains(t, out, "Total hours:     7.50")
	assert.Contains(t, out, "In progress:     1")
}

func TestTokenCommand(t *testing.T) {
	out, err := execute(t, "", "token", "--secret", "s3cret", "--company", "c-1", "--role", "owner")
	require.NoError(t, err)

	token, err := jwt.NewJWTService("s3cret", "1h").JWTAuth().Decode(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "c-1", token.PrivateClaims()["company_id"])
	assert.Equal(t, "owner", token.PrivateClaims()["role"])
}

func TestTokenCommand_RejectsUnknownRole(t *testing.T) {
	_, err := execute(t, "", "token", "--secret", "s3cret", "--role", "superuser")
	assert.ErrorContains(t, err, "unknown role")
}
