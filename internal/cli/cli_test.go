package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const input = `{
  "campaignStart": "2024-01-01",
  "campaignEnd": "2024-02-29",
  "lineItems": [
    {
      "line_item_id": "LI-1",
      "channel": "programmatic-display",
      "buy_type": "CPM",
      "bursts": [{"start_date": "2024-01-01", "end_date": "2024-01-10", "budget": 1000, "deliverables": 100000}]
    },
    {
      "lineItemId": "LI-2",
      "channel": "meta",
      "buyType": "CPC",
      "bursts_json": "[{\"startDate\":\"2024-01-25\",\"endDate\":\"2024-02-05\",\"budget\":1200}]"
    }
  ],
  "delivery": [
    {"channel": "programmatic-display", "date": "2024-01-01", "lineItemId": "LI-1", "spend": 100, "impressions": 10000},
    {"channel": "programmatic-display", "date": "2024-01-02", "lineItemId": "LI-1", "spend": 100, "impressions": 10000},
    {"channel": "meta", "date": "2024-01-02", "matchedPostfix": "li-2", "spend": 5, "clicks": 3}
  ]
}`

func writeInput(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(input), 0o600))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPacingCommand_JSON(t *testing.T) {
	out, err := run(t, "", "pacing", "--input", writeInput(t), "--as-of", "2024-01-05")
	require.NoError(t, err)

	var resp struct {
		Items []struct {
			LineItemID  string `json:"lineItemId"`
			MatchedRows int    `json:"matchedRows"`
		} `json:"items"`
		Container struct {
			Status string `json:"status"`
			Spend  struct {
				ActualToDate   string `json:"actualToDate"`
				ExpectedToDate string `json:"expectedToDate"`
			} `json:"spend"`
		} `json:"container"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 2, resp.Items[0].MatchedRows)
	assert.Equal(t, 1, resp.Items[1].MatchedRows)
	assert.Equal(t, "ok", resp.Container.Status)
	assert.Equal(t, "200", resp.Container.Spend.ActualToDate)
	assert.Equal(t, "500", resp.Container.Spend.ExpectedToDate)
}

func TestPacingCommand_CSVFromStdin(t *testing.T) {
	out, err := run(t, input, "pacing", "--format", "csv", "--as-of", "2024-01-05")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "line_item_id,status,as_of,matched_rows,spend_actual"))
	assert.True(t, strings.HasPrefix(lines[1], "LI-1,ok,2024-01-05,2,200.00,500.00,40.00,1000.00,impressions,20000.00,50000.00,40.00"))
	assert.True(t, strings.HasPrefix(lines[3], "container,ok,2024-01-05,0,200.00,500.00,40.00,2200.00,,"))
}

func TestSeriesCommand(t *testing.T) {
	out, err := run(t, "", "series", "-i", writeInput(t), "-f", "csv", "--as-of", "2024-01-05")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "scope,line_item_id,date,actual_spend,deliverable_key,actual_deliverable", lines[0])
	// 10 days for LI-1, 12 for LI-2 and 36 for the container window
	assert.Len(t, lines, 1+10+12+36)
	assert.Equal(t, "line_item,LI-1,2024-01-01,100.00,impressions,10000", lines[1])
}

func TestBillingCommand(t *testing.T) {
	out, err := run(t, "", "billing", "--input", writeInput(t), "--format", "csv", "--month-keys", "long")
	require.NoError(t, err)
	assert.Equal(t, "month,amount,mode\nJanuary 2024,1700.00,auto\nFebruary 2024,500.00,auto\n", out)
}

func TestUnknownFormat(t *testing.T) {
	_, err := run(t, "", "pacing", "--input", writeInput(t), "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestBadAsOf(t *testing.T) {
	_, err := run(t, "", "pacing", "--input", writeInput(t), "--as-of", "soon")
	assert.ErrorContains(t, err, "--as-of")
}
