package kml

// Feature is the AbstractFeature group.
type Feature interface {
	Object
	Common() *FeatureData
	isFeature()
}

// FeatureData is the element set shared by every feature.
type FeatureData struct {
	IdAttributes
	Name           string
	Visibility     bool
	Open           bool
	Author         *Author
	AtomLink       *AtomLink
	Address        string
	PhoneNumber    string
	Snippet        *Snippet
	Description    string
	View           View
	TimePrimitive  TimePrimitive
	StyleURL       string
	StyleSelectors []StyleSelector
	Region         *Region
	ExtendedData   *ExtendedData
}

func newFeatureData() FeatureData {
	return FeatureData{Visibility: DefaultVisibility, Open: DefaultOpen}
}

func (f *FeatureData) Common() *FeatureData {
	return f
}

// Author is atom:author.
type Author struct {
	Name  string
	URI   string
	Email string
}

// AtomLink is atom:link.
type AtomLink struct {
	Href string
}

type Snippet struct {
	Text     string
	MaxLines int
}

func NewSnippet() *Snippet {
	return &Snippet{MaxLines: DefaultMaxSnippetLines}
}

type Placemark struct {
	FeatureData
	Geometry Geometry
}

func NewPlacemark() *Placemark {
	return &Placemark{FeatureData: newFeatureData()}
}

type Folder struct {
	FeatureData
	Features []Feature
}

func NewFolder() *Folder {
	return &Folder{FeatureData: newFeatureData()}
}

type Document struct {
	FeatureData
	Schemas  []*Schema
	Features []Feature
}

func NewDocument() *Document {
	return &Document{FeatureData: newFeatureData()}
}

type NetworkLink struct {
	FeatureData
	RefreshVisibility bool
	FlyToView         bool
	Link              *Link
}

func NewNetworkLink() *NetworkLink {
	return &NetworkLink{
		FeatureData:       newFeatureData(),
		RefreshVisibility: DefaultRefreshVisibility,
		FlyToView:         DefaultFlyToView,
	}
}

// OverlayData is the AbstractOverlay element set.
type OverlayData struct {
	FeatureData
	Color     Color
	DrawOrder int
	Icon      *Link
}

func newOverlayData() OverlayData {
	return OverlayData{FeatureData: newFeatureData(), Color: DefaultColor, DrawOrder: DefaultDrawOrder}
}

type GroundOverlay struct {
	OverlayData
	Altitude     float64
	AltitudeMode AltitudeMode
	LatLonBox    *LatLonBox
}

func NewGroundOverlay() *GroundOverlay {
	return &GroundOverlay{OverlayData: newOverlayData(), AltitudeMode: DefaultAltitudeMode}
}

type ScreenOverlay struct {
	OverlayData
	OverlayXY  *Vec2
	ScreenXY   *Vec2
	RotationXY *Vec2
	Size       *Vec2
	Rotation   float64
}

func NewScreenOverlay() *ScreenOverlay {
	return &ScreenOverlay{OverlayData: newOverlayData()}
}

type PhotoOverlay struct {
	OverlayData
	Rotation     float64
	ViewVolume   *ViewVolume
	ImagePyramid *ImagePyramid
	Point        *Point
	Shape        Shape
}

func NewPhotoOverlay() *PhotoOverlay {
	return &PhotoOverlay{OverlayData: newOverlayData(), Shape: DefaultShape}
}

type ViewVolume struct {
	IdAttributes
	LeftFov   float64
	RightFov  float64
	BottomFov float64
	TopFov    float64
	Near      float64
}

type ImagePyramid struct {
	IdAttributes
	TileSize   int
	MaxWidth   int
	MaxHeight  int
	GridOrigin GridOrigin
}

func NewImagePyramid() *ImagePyramid {
	return &ImagePyramid{TileSize: DefaultTileSize, GridOrigin: DefaultGridOrigin}
}

// Schema declares the typed fields referenced by SchemaData.
type Schema struct {
	ID           string
	Name         string
	SimpleFields []*SimpleField
}

type SimpleField struct {
	Type        string
	Name        string
	DisplayName string
}

func (*Placemark) isFeature()     {}
func (*Folder) isFeature()        {}
func (*Document) isFeature()      {}
func (*NetworkLink) isFeature()   {}
func (*GroundOverlay) isFeature() {}
func (*ScreenOverlay) isFeature() {}
func (*PhotoOverlay) isFeature()  {}

// Children returns the ordered child features of a container, or nil.
func Children(f Feature) []Feature {
	switch v := f.(type) {
	case *Folder:
		return v.Features
	case *Document:
		return v.Features
	}
	return nil
}

// Walk visits f and every descendant feature in document order.
func Walk(f Feature, fn func(Feature)) {
	if f == nil {
		return
	}
	fn(f)
	for _, c := range Children(f) {
		Walk(c, fn)
	}
}
