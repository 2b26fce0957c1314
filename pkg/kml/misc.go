package kml

// View is the AbstractView group.
type View interface {
	Object
	isView()
}

// TimePrimitive is the AbstractTimePrimitive group.
type TimePrimitive interface {
	Object
	isTimePrimitive()
}

type Camera struct {
	IdAttributes
	Longitude    float64
	Latitude     float64
	Altitude     float64
	Heading      float64
	Tilt         float64
	Roll         float64
	AltitudeMode AltitudeMode
}

func NewCamera() *Camera {
	return &Camera{AltitudeMode: DefaultAltitudeMode}
}

type LookAt struct {
	IdAttributes
	Longitude    float64
	Latitude     float64
	Altitude     float64
	Heading      float64
	Tilt         float64
	Range        float64
	AltitudeMode AltitudeMode
}

func NewLookAt() *LookAt {
	return &LookAt{AltitudeMode: DefaultAltitudeMode}
}

type TimeStamp struct {
	IdAttributes
	When DateTime
}

type TimeSpan struct {
	IdAttributes
	Begin DateTime
	End   DateTime
}

func (*Camera) isView() {}
func (*LookAt) isView() {}

func (*TimeStamp) isTimePrimitive() {}
func (*TimeSpan) isTimePrimitive()  {}

// Link is shared by <Link>, <Icon> and the legacy <Url> element.
type Link struct {
	IdAttributes
	Href            string
	RefreshMode     RefreshMode
	RefreshInterval float64
	ViewRefreshMode ViewRefreshMode
	ViewRefreshTime float64
	ViewBoundScale  float64
	ViewFormat      string
	HTTPQuery       string
}

func NewLink() *Link {
	return &Link{
		RefreshMode:     DefaultRefreshMode,
		RefreshInterval: DefaultRefreshInterval,
		ViewRefreshMode: DefaultViewRefreshMode,
		ViewRefreshTime: DefaultViewRefreshTime,
		ViewBoundScale:  DefaultViewBoundScale,
	}
}

// BasicLink is the href-only icon used by IconStyle and ItemIcon.
type BasicLink struct {
	IdAttributes
	Href string
}

type Region struct {
	IdAttributes
	LatLonAltBox *LatLonAltBox
	Lod          *Lod
}

type LatLonAltBox struct {
	IdAttributes
	North        float64
	South        float64
	East         float64
	West         float64
	MinAltitude  float64
	MaxAltitude  float64
	AltitudeMode AltitudeMode
}

func NewLatLonAltBox() *LatLonAltBox {
	return &LatLonAltBox{AltitudeMode: DefaultAltitudeMode}
}

type Lod struct {
	IdAttributes
	MinLodPixels  float64
	MaxLodPixels  float64
	MinFadeExtent float64
	MaxFadeExtent float64
}

func NewLod() *Lod {
	return &Lod{MinLodPixels: DefaultMinLodPixels, MaxLodPixels: DefaultMaxLodPixels}
}

type LatLonBox struct {
	IdAttributes
	North    float64
	South    float64
	East     float64
	West     float64
	Rotation float64
}

type ExtendedData struct {
	Data       []*Data
	SchemaData []*SchemaData
}

type Data struct {
	IdAttributes
	Name        string
	DisplayName string
	Value       string
}

type SchemaData struct {
	IdAttributes
	SchemaURL  string
	SimpleData []*SimpleData
}

type SimpleData struct {
	Name  string
	Value string
}

type NetworkLinkControl struct {
	MinRefreshPeriod float64
	MaxSessionLength float64
	Cookie           string
	Message          string
	LinkName         string
	LinkDescription  string
	LinkSnippet      *Snippet
	Expires          DateTime
	Update           *Update
	View             View
}

func NewNetworkLinkControl() *NetworkLinkControl {
	return &NetworkLinkControl{
		MinRefreshPeriod: DefaultMinRefreshPeriod,
		MaxSessionLength: DefaultMaxSessionLength,
	}
}

// Update carries the ordered Create, Delete and Change operations aimed at
// a previously loaded document.
type Update struct {
	TargetHref string
	Operations []UpdateOperation
}

// UpdateOperation is one of *Create, *Delete or *Change.
type UpdateOperation interface {
	isUpdateOperation()
}

// Create adds features to the containers named by their targetId.
type Create struct {
	Features []Feature
}

type Delete struct {
	Features []Feature
}

// Change replaces fields of the objects named by their targetId.
type Change struct {
	Objects []Object
}

func (*Create) isUpdateOperation() {}
func (*Delete) isUpdateOperation() {}
func (*Change) isUpdateOperation() {}
