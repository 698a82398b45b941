package snippet

import "testing"

func TestQuote(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		single string
		double string
	}{
		{"plain", "price", `'price'`, `"price"`},
		{"apostrophe", "owner's", `'owner\'s'`, `"owner's"`},
		{"double quote", `a "b"`, `'a "b"'`, `"a \"b\""`},
		{"backslash", `C:\x`, `'C:\\x'`, `"C:\\x"`},
		{"newline", "a\nb", `'a\nb'`, `"a\nb"`},
		{"unicode", "größe", `'größe'`, `"größe"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Single(tt.in); got != tt.single {
				t.Errorf("Single(%q) = %s, want %s", tt.in, got, tt.single)
			}
			if got := Double(tt.in); got != tt.double {
				t.Errorf("Double(%q) = %s, want %s", tt.in, got, tt.double)
			}
		})
	}
}

func TestCall(t *testing.T) {
	c := Call{
		Func: "sns.histplot",
		Args: []Arg{
			{Name: "x", Value: Single("age")},
			{Name: "data", Value: "data"},
			{Name: "kde", Value: "True"},
		},
	}
	if got, want := c.String(), "sns.histplot(x='age', data=data, kde=True)"; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
	if !c.Has("kde") || c.Has("y") {
		t.Error("Has() reported the wrong keyword arguments")
	}

	positional := Call{Func: "print", Args: []Arg{{Value: "len(data)"}}}
	if got := positional.String(); got != "print(len(data))" {
		t.Errorf("String() = %s", got)
	}
}

func TestColumn(t *testing.T) {
	if got := Column("it's"); got != `data['it\'s']` {
		t.Errorf("Column() = %s", got)
	}
}
