package preset

// prBuiltins returns the shipped presets.
func prBuiltins() []GridPreset {
	return []GridPreset{
		{
			Name:          "default",
			Description:   "10x10 square cells with hairline strokes",
			Columns:       10,
			Rows:          10,
			BorderWidth:   1,
			GridLineWidth: 1,
			Uniform:       true,
		},
		{
			Name:          "chess",
			Description:   "8x8 board with a heavy frame",
			Columns:       8,
			Rows:          8,
			BorderWidth:   3,
			GridLineWidth: 1,
			Uniform:       true,
		},
		{
			Name:          "go",
			Description:   "19x19 board",
			Columns:       19,
			Rows:          19,
			BorderWidth:   2,
			GridLineWidth: 1,
			Uniform:       true,
		},
		{
			Name:          "sudoku",
			Description:   "9x9 puzzle grid",
			Columns:       9,
			Rows:          9,
			BorderWidth:   3,
			GridLineWidth: 1,
			Uniform:       true,
		},
		{
			Name:          "tictactoe",
			Description:   "3x3 lines without a frame",
			Columns:       3,
			Rows:          3,
			BorderWidth:   0,
			GridLineWidth: 3,
			Uniform:       true,
		},
		{
			Name:          "calendar",
			Description:   "7 days by 6 weeks, stretched to fill",
			Columns:       7,
			Rows:          6,
			BorderWidth:   1,
			GridLineWidth: 1,
			Uniform:       false,
		},
	}
}
