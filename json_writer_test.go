package funding

import "testing"

func TestJsonObjectWriter(t *testing.T) {
	testCases := []struct {
		name    string
		build   func(w *jsonObjectWriter)
		want    string
		wantErr bool
	}{
		{
			name:  "nothing",
			build: func(w *jsonObjectWriter) {},
			want:  `{}`,
		},
		{
			name: "insertion order",
			build: func(w *jsonObjectWriter) {
				w.Append("startup", "Zomato").Append("amount", 12.5)
			},
			want: `{"startup":"Zomato","amount":12.5}`,
		},
		{
			name: "zero values",
			build: func(w *jsonObjectWriter) {
				w.Append("amount", 0)
				w.Optional("city", "")
				w.Optional("round", "Seed")
				w.Optional("partial", false)
			},
			want: `{"amount":0,"round":"Seed"}`,
		},
		{
			name: "first error wins",
			build: func(w *jsonObjectWriter) {
				w.Append("bad", func() {}).Append("startup", "Zomato")
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var w jsonObjectWriter
			tc.build(&w)
			got, err := w.MarshalJSON()
			if (err != nil) != tc.wantErr {
				t.Fatalf("MarshalJSON() error = %v, wantErr %v", err, tc.wantErr)
			}
			if !tc.wantErr && string(got) != tc.want {
				t.Errorf("MarshalJSON() = %s, want %s", got, tc.want)
			}
		})
	}
}
