package layout

import "testing"

func TestCompute(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         Opts
		want         Rows
	}{
		{
			name:         "reader",
			windowHeight: 40,
			opts:         Opts{HeaderHeight: 2, BarHeight: 1, StatusHeight: 1, HelpHeight: 1},
			want:         Rows{Content: 2, ContentHeight: 33, FullBar: 35, SnippetBar: 36, Status: 37, Help: 38},
		},
		{
			name:         "list has no bars",
			windowHeight: 40,
			opts:         Opts{HeaderHeight: 2, StatusHeight: 1, HelpHeight: 1},
			want:         Rows{Content: 2, ContentHeight: 36, FullBar: 38, SnippetBar: 38, Status: 38, Help: 39},
		},
		{
			name:         "tiny window keeps one content row",
			windowHeight: 3,
			opts:         Opts{HeaderHeight: 2, BarHeight: 1, StatusHeight: 1, HelpHeight: 1},
			want:         Rows{Content: 2, ContentHeight: 1, FullBar: 3, SnippetBar: 4, Status: 5, Help: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.windowHeight, tt.opts)
			if got != tt.want {
				t.Errorf("Compute() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCompute_FillsWindow(t *testing.T) {
	o := ReaderOpts()
	for h := 10; h < 80; h++ {
		r := Compute(h, o)
		if got := r.Help + o.HelpHeight; got != h {
			t.Fatalf("height %d: layout ends at %d", h, got)
		}
	}
}

func TestOnFullBar(t *testing.T) {
	o := ReaderOpts()
	r := Compute(30, o)

	if !r.OnFullBar(r.FullBar, o) {
		t.Error("full bar row should hit")
	}
	if r.OnFullBar(r.SnippetBar, o) || r.OnFullBar(r.FullBar-1, o) {
		t.Error("neighbouring rows should miss")
	}

	lo := ListOpts()
	lr := Compute(30, lo)
	if lr.OnFullBar(lr.FullBar, lo) {
		t.Error("list screen has no full bar")
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct {
		width, want, margin int
	}{
		{80, 80, 0},
		{100, 100, 0},
		{140, 100, 20},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := ContentWidth(tt.width); got != tt.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tt.width, got, tt.want)
		}
		if got := LeftMargin(tt.width); got != tt.margin {
			t.Errorf("LeftMargin(%d) = %d, want %d", tt.width, got, tt.margin)
		}
	}
}
