package funding

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/funding/date"
	"github.com/google/go-cmp/cmp"
)

func TestDecodeLedger(t *testing.T) {
	input := `{"date":"2023-01-10","startup":"Alpha","vertical":"Fintech","city":"Bengaluru","round":"Seed","investors":"X, Y","amount":10.5}

{"date":"2023-02","startup":" Beta ","investors":"Z"}
`
	l, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}
	want := []Event{
		{ID: 1, Date: date.MustParse("2023-01-10"), Startup: "Alpha", Vertical: "Fintech", City: "Bengaluru", Round: "Seed", Investors: "X, Y", Amount: INR(10.5)},
		{ID: 2, Date: date.MustParse("2023-02-01"), Partial: true, Startup: "Beta", Investors: "Z", Amount: INR(0)},
	}
	if diff := cmp.Diff(want, l.Events(), cmpOpts); diff != "" {
		t.Errorf("DecodeLedger() mismatch (-want +got):\n%s", diff)
	}

	t.Run("round trip", func(t *testing.T) {
		var buf bytes.Buffer
		if err := EncodeLedger(&buf, l); err != nil {
			t.Fatalf("EncodeLedger() failed: %v", err)
		}
		if !strings.Contains(buf.String(), `"date":"2023-02"`) {
			t.Errorf("EncodeLedger() lost the partial date:\n%s", buf.String())
		}
		got, err := DecodeLedger(&buf)
		if err != nil {
			t.Fatalf("DecodeLedger() failed: %v", err)
		}
		if got.Version() != l.Version() {
			t.Errorf("round trip changed the ledger:\n%s", buf.String())
		}
	})
}

func TestDecodeLedger_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "bad json", input: `{"date":"2023-01-10"}` + "\n{", wantErr: "line 2"},
		{name: "bad date", input: `{"date":"10/01/2023","startup":"A"}`, wantErr: "line 1"},
		{name: "negative", input: `{"date":"2023-01-10","startup":"A","amount":-3}`, wantErr: "negative"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tc.input))
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("DecodeLedger() error = %v, want it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestDecodeCSV(t *testing.T) {
	input := `Date,Startup,Vertical,City,Investors,Round,Amount_Crore_Rs
2021-01-01,A,Fintech,Pune,"X, Y",Seed,10
2022-06-15,B,Edtech,Delhi,"Y, Z",Series A,
`
	l, err := DecodeCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeCSV() failed: %v", err)
	}
	want := []Event{
		{ID: 1, Date: date.MustParse("2021-01-01"), Startup: "A", Vertical: "Fintech", City: "Pune", Round: "Seed", Investors: "X, Y", Amount: INR(10)},
		{ID: 2, Date: date.MustParse("2022-06-15"), Startup: "B", Vertical: "Edtech", City: "Delhi", Round: "Series A", Investors: "Y, Z", Amount: INR(0)},
	}
	if diff := cmp.Diff(want, l.Events(), cmpOpts); diff != "" {
		t.Errorf("DecodeCSV() mismatch (-want +got):\n%s", diff)
	}

	t.Run("missing column", func(t *testing.T) {
		_, err := DecodeCSV(strings.NewReader("date,startup\n2021-01-01,A\n"))
		if err == nil || !strings.Contains(err.Error(), `"amount"`) {
			t.Errorf("DecodeCSV() error = %v, want a missing amount column", err)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		_, err := DecodeCSV(strings.NewReader("date,startup,amount\n2021-01-01,A,10\n2021-01-02,B,ten\n"))
		if err == nil || !strings.Contains(err.Error(), "row 3") {
			t.Errorf("DecodeCSV() error = %v, want it to point at row 3", err)
		}
	})
}
