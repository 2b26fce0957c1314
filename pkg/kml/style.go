package kml

// StyleSelector is the AbstractStyleSelector group.
type StyleSelector interface {
	Object
	isStyleSelector()
}

// Style bundles up to six sub-styles.
type Style struct {
	IdAttributes
	IconStyle    *IconStyle
	LabelStyle   *LabelStyle
	LineStyle    *LineStyle
	PolyStyle    *PolyStyle
	BalloonStyle *BalloonStyle
	ListStyle    *ListStyle
}

func NewStyle() *Style {
	return &Style{}
}

type StyleMap struct {
	IdAttributes
	Pairs []*Pair
}

// Pair maps a style state to a style URL or an inline selector.
type Pair struct {
	IdAttributes
	Key           StyleState
	StyleURL      string
	StyleSelector StyleSelector
}

func NewPair() *Pair {
	return &Pair{Key: DefaultStyleState}
}

// ColorStyleData is the AbstractColorStyle element set.
type ColorStyleData struct {
	IdAttributes
	Color     Color
	ColorMode ColorMode
}

func newColorStyleData() ColorStyleData {
	return ColorStyleData{Color: DefaultColor, ColorMode: DefaultColorMode}
}

type IconStyle struct {
	ColorStyleData
	Scale   float64
	Heading float64
	Icon    *BasicLink
	HotSpot *Vec2
}

func NewIconStyle() *IconStyle {
	return &IconStyle{ColorStyleData: newColorStyleData(), Scale: DefaultScale}
}

type LabelStyle struct {
	ColorStyleData
	Scale float64
}

func NewLabelStyle() *LabelStyle {
	return &LabelStyle{ColorStyleData: newColorStyleData(), Scale: DefaultScale}
}

type LineStyle struct {
	ColorStyleData
	Width float64
}

func NewLineStyle() *LineStyle {
	return &LineStyle{ColorStyleData: newColorStyleData(), Width: DefaultWidth}
}

type PolyStyle struct {
	ColorStyleData
	Fill    bool
	Outline bool
}

func NewPolyStyle() *PolyStyle {
	return &PolyStyle{ColorStyleData: newColorStyleData(), Fill: DefaultFill, Outline: DefaultOutline}
}

type BalloonStyle struct {
	IdAttributes
	BgColor     Color
	TextColor   Color
	Text        string
	DisplayMode DisplayMode
}

func NewBalloonStyle() *BalloonStyle {
	return &BalloonStyle{BgColor: DefaultBgColor, TextColor: DefaultTextColor, DisplayMode: DefaultDisplayMode}
}

type ListStyle struct {
	IdAttributes
	ListItemType    ListItemType
	BgColor         Color
	ItemIcons       []*ItemIcon
	MaxSnippetLines int
}

func NewListStyle() *ListStyle {
	return &ListStyle{ListItemType: DefaultListItemType, BgColor: DefaultBgColor, MaxSnippetLines: DefaultMaxSnippetLines}
}

type ItemIcon struct {
	IdAttributes
	States []ItemIconState
	Href   string
}

func (*Style) isStyleSelector()    {}
func (*StyleMap) isStyleSelector() {}
