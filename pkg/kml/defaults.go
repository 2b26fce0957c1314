package kml

// Schema defaults applied when an optional element is absent.
const (
	Namespace     = "http://www.opengis.net/kml/2.2"
	AtomNamespace = "http://www.w3.org/2005/Atom"
	GxNamespace   = "http://www.google.com/kml/ext/2.2"

	DefaultVisibility        = true
	DefaultOpen              = false
	DefaultExtrude           = false
	DefaultTessellate        = false
	DefaultAltitudeMode      = AltitudeModeClampToGround
	DefaultColorMode         = ColorModeNormal
	DefaultDisplayMode       = DisplayModeDefault
	DefaultListItemType      = ListItemCheck
	DefaultRefreshMode       = RefreshOnChange
	DefaultViewRefreshMode   = ViewRefreshNever
	DefaultUnits             = UnitsFraction
	DefaultShape             = ShapeRectangle
	DefaultGridOrigin        = GridOriginLowerLeft
	DefaultStyleState        = StyleStateNormal
	DefaultScale             = 1.0
	DefaultWidth             = 1.0
	DefaultFill              = true
	DefaultOutline           = true
	DefaultMaxSnippetLines   = 2
	DefaultRefreshInterval   = 4.0
	DefaultViewRefreshTime   = 4.0
	DefaultViewBoundScale    = 1.0
	DefaultMinLodPixels      = 0.0
	DefaultMaxLodPixels      = -1.0
	DefaultDrawOrder         = 0
	DefaultTileSize          = 256
	DefaultMaxSessionLength  = -1.0
	DefaultMinRefreshPeriod  = 0.0
	DefaultVec2X             = 1.0
	DefaultVec2Y             = 1.0
	DefaultRefreshVisibility = false
	DefaultFlyToView         = false
)

var (
	DefaultColor     = Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	DefaultBgColor   = Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	DefaultTextColor = Color{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)
