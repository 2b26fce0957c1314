package kml

import "strings"

type AltitudeMode string

const (
	AltitudeModeClampToGround    AltitudeMode = "clampToGround"
	AltitudeModeRelativeToGround AltitudeMode = "relativeToGround"
	AltitudeModeAbsolute         AltitudeMode = "absolute"
)

type ColorMode string

const (
	ColorModeNormal ColorMode = "normal"
	ColorModeRandom ColorMode = "random"
)

type DisplayMode string

const (
	DisplayModeDefault DisplayMode = "default"
	DisplayModeHide    DisplayMode = "hide"
)

type ListItemType string

const (
	ListItemCheck             ListItemType = "check"
	ListItemCheckOffOnly      ListItemType = "checkOffOnly"
	ListItemCheckHideChildren ListItemType = "checkHideChildren"
	ListItemRadioFolder       ListItemType = "radioFolder"
)

type ItemIconState string

const (
	ItemIconOpen      ItemIconState = "open"
	ItemIconClosed    ItemIconState = "closed"
	ItemIconError     ItemIconState = "error"
	ItemIconFetching0 ItemIconState = "fetching0"
	ItemIconFetching1 ItemIconState = "fetching1"
	ItemIconFetching2 ItemIconState = "fetching2"
)

type RefreshMode string

const (
	RefreshOnChange   RefreshMode = "onChange"
	RefreshOnInterval RefreshMode = "onInterval"
	RefreshOnExpire   RefreshMode = "onExpire"
)

type ViewRefreshMode string

const (
	ViewRefreshNever     ViewRefreshMode = "never"
	ViewRefreshOnStop    ViewRefreshMode = "onStop"
	ViewRefreshOnRequest ViewRefreshMode = "onRequest"
	ViewRefreshOnRegion  ViewRefreshMode = "onRegion"
)

type Units string

const (
	UnitsFraction    Units = "fraction"
	UnitsPixels      Units = "pixels"
	UnitsInsetPixels Units = "insetPixels"
)

type Shape string

const (
	ShapeRectangle Shape = "rectangle"
	ShapeCylinder  Shape = "cylinder"
	ShapeSphere    Shape = "sphere"
)

type GridOrigin string

const (
	GridOriginLowerLeft GridOrigin = "lowerLeft"
	GridOriginUpperLeft GridOrigin = "upperLeft"
)

type StyleState string

const (
	StyleStateNormal    StyleState = "normal"
	StyleStateHighlight StyleState = "highlight"
)

// Lookup tables. Unknown literals map to the schema default.
var (
	altitudeModes = map[string]AltitudeMode{
		"clampToGround":    AltitudeModeClampToGround,
		"relativeToGround": AltitudeModeRelativeToGround,
		"absolute":         AltitudeModeAbsolute,
	}
	colorModes = map[string]ColorMode{
		"normal": ColorModeNormal,
		"random": ColorModeRandom,
	}
	displayModes = map[string]DisplayMode{
		"default": DisplayModeDefault,
		"hide":    DisplayModeHide,
	}
	listItemTypes = map[string]ListItemType{
		"check":             ListItemCheck,
		"checkOffOnly":      ListItemCheckOffOnly,
		"checkHideChildren": ListItemCheckHideChildren,
		"radioFolder":       ListItemRadioFolder,
	}
	itemIconStates = map[string]ItemIconState{
		"open":      ItemIconOpen,
		"closed":    ItemIconClosed,
		"error":     ItemIconError,
		"fetching0": ItemIconFetching0,
		"fetching1": ItemIconFetching1,
		"fetching2": ItemIconFetching2,
	}
	refreshModes = map[string]RefreshMode{
		"onChange":   RefreshOnChange,
		"onInterval": RefreshOnInterval,
		"onExpire":   RefreshOnExpire,
	}
	viewRefreshModes = map[string]ViewRefreshMode{
		"never":     ViewRefreshNever,
		"onStop":    ViewRefreshOnStop,
		"onRequest": ViewRefreshOnRequest,
		"onRegion":  ViewRefreshOnRegion,
	}
	unitsTable = map[string]Units{
		"fraction":    UnitsFraction,
		"pixels":      UnitsPixels,
		"insetPixels": UnitsInsetPixels,
	}
	shapes = map[string]Shape{
		"rectangle": ShapeRectangle,
		"cylinder":  ShapeCylinder,
		"sphere":    ShapeSphere,
	}
	gridOrigins = map[string]GridOrigin{
		"lowerLeft": GridOriginLowerLeft,
		"upperLeft": GridOriginUpperLeft,
	}
	styleStates = map[string]StyleState{
		"normal":    StyleStateNormal,
		"highlight": StyleStateHighlight,
	}
)

func lookup[T any](table map[string]T, s string, def T) T {
	if v, ok := table[strings.TrimSpace(s)]; ok {
		return v
	}
	return def
}

func ParseAltitudeMode(s string) AltitudeMode {
	return lookup(altitudeModes, s, DefaultAltitudeMode)
}

func ParseColorMode(s string) ColorMode {
	return lookup(colorModes, s, DefaultColorMode)
}

func ParseDisplayMode(s string) DisplayMode {
	return lookup(displayModes, s, DefaultDisplayMode)
}

func ParseListItemType(s string) ListItemType {
	return lookup(listItemTypes, s, DefaultListItemType)
}

// ParseItemIconStates splits a space separated state list, dropping
// unknown states.
func ParseItemIconStates(s string) []ItemIconState {
	var states []ItemIconState
	for _, f := range strings.Fields(s) {
		if st, ok := itemIconStates[f]; ok {
			states = append(states, st)
		}
	}
	return states
}

func ParseRefreshMode(s string) RefreshMode {
	return lookup(refreshModes, s, DefaultRefreshMode)
}

func ParseViewRefreshMode(s string) ViewRefreshMode {
	return lookup(viewRefreshModes, s, DefaultViewRefreshMode)
}

func ParseUnits(s string) Units {
	return lookup(unitsTable, s, DefaultUnits)
}

func ParseShape(s string) Shape {
	return lookup(shapes, s, DefaultShape)
}

func ParseGridOrigin(s string) GridOrigin {
	return lookup(gridOrigins, s, DefaultGridOrigin)
}

func ParseStyleState(s string) StyleState {
	return lookup(styleStates, s, DefaultStyleState)
}
