package validate

import "testing"

func TestFormInt_Decode(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "plain number", input: `3`, want: 3},
		{name: "quoted number", input: `"3"`, want: 3},
		{name: "negative quoted", input: `"-2"`, want: -2},
		{name: "null keeps zero", input: `null`, want: 0},
		{name: "non-numeric string", input: `"three"`, wantErr: true},
		{name: "empty string", input: `""`, wantErr: true},
		{name: "float", input: `"3.5"`, wantErr: true},
		{name: "unterminated quote", input: `"3`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n FormInt
			// Call UnmarshalJSON directly so malformed tokens reach the
			// coercion logic instead of being caught by the JSON parser.
			err := n.UnmarshalJSON([]byte(tc.input))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected decode error for %s, got value %d", tc.input, n.Int())
				}
				return
			}
			if err != nil {
				t.Fatalf("decode %s: %v", tc.input, err)
			}
			if n.Int() != tc.want {
				t.Fatalf("decode %s: expected %d got %d", tc.input, tc.want, n.Int())
			}
		})
	}
}
