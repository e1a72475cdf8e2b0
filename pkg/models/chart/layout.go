package chart

type Layout struct {
	Height       int     `json:"height,omitempty"`
	Title        *Title  `json:"title,omitempty"`
	XAxis        Axis    `json:"xaxis"`
	YAxis        Axis    `json:"yaxis"`
	PlotBGColor  string  `json:"plot_bgcolor,omitempty"`
	Margin       *Margin `json:"margin,omitempty"`
	ShowLegend   bool    `json:"showlegend"`
}

type Title struct {
	Text    string  `json:"text"`
	X       float64 `json:"x,omitempty"`
	XAnchor string  `json:"xanchor,omitempty"`
}

type Axis struct {
	ShowLine  bool      `json:"showline"`
	ShowGrid  bool      `json:"showgrid"`
	ZeroLine  bool      `json:"zeroline"`
	TickMode  string    `json:"tickmode,omitempty"`
	TickText  []string  `json:"ticktext,omitempty"`
	TickVals  []float64 `json:"tickvals,omitempty"`
	TickFont  *Font     `json:"tickfont,omitempty"`
	AutoRange string    `json:"autorange,omitempty"`
}

type Font struct {
	Size  int    `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

type Margin struct {
	T int `json:"t"`
}
