package kmlread

const richKML = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2" xmlns:gx="http://www.google.com/kml/ext/2.2" xmlns:atom="http://www.w3.org/2005/Atom">
<Document id="doc">
  <name>Field survey</name>
  <open>1</open>
  <atom:author><atom:name>Survey Team</atom:name></atom:author>
  <atom:link href="https://example.org/survey"/>
  <Snippet maxLines="1">short</Snippet>
  <description><![CDATA[<p>Stations &amp; tracks</p>]]></description>
  <LookAt><longitude>8.5</longitude><latitude>47.3</latitude><range>1200</range><tilt>45</tilt><altitudeMode>relativeToGround</altitudeMode></LookAt>
  <Style id="red">
    <IconStyle><color>ff0000ff</color><scale>1.5</scale><Icon><href>pin.png</href></Icon><hotSpot x="0.5" y="0" xunits="fraction" yunits="pixels"/></IconStyle>
    <LineStyle><color>ff8020aa</color><width>3</width></LineStyle>
    <PolyStyle><fill>0</fill></PolyStyle>
    <BalloonStyle><text>$[name]</text></BalloonStyle>
    <ListStyle><listItemType>radioFolder</listItemType><ItemIcon><state>open error</state><href>i.png</href></ItemIcon></ListStyle>
  </Style>
  <StyleMap id="pin">
    <Pair><key>normal</key><styleUrl>#red</styleUrl></Pair>
    <Pair><key>highlight</key><Style><LabelStyle><scale>2</scale></LabelStyle></Style></Pair>
  </StyleMap>
  <Schema name="station" id="stationSchema">
    <SimpleField type="int" name="elev"><displayName>Elevation</displayName></SimpleField>
  </Schema>
  <Folder id="f1">
    <name>Stations</name>
    <visibility>false</visibility>
    <Placemark id="p1">
      <name>A</name>
      <styleUrl>#pin</styleUrl>
      <TimeStamp><when>2009-07</when></TimeStamp>
      <ExtendedData>
        <Data name="crew"><displayName>Crew</displayName><value>3</value></Data>
        <SchemaData schemaUrl="#stationSchema"><SimpleData name="elev">408</SimpleData></SchemaData>
      </ExtendedData>
      <Point><extrude>1</extrude><altitudeMode>absolute</altitudeMode><coordinates>8.54,47.37,408</coordinates></Point>
    </Placemark>
    <Placemark id="p2">
      <name>Track</name>
      <TimeSpan><begin>2009-07-01T10:00:00Z</begin><end>2009-07-01T12:30:00Z</end></TimeSpan>
      <gx:balloonVisibility>1</gx:balloonVisibility>
      <LineString><tessellate>1</tessellate><coordinates>
        8.54,47.37,408 8.55,47.38
        8.56,47.39,420
      </coordinates></LineString>
    </Placemark>
    <Placemark id="p3">
      <name>Area</name>
      <Region>
        <LatLonAltBox><north>47.4</north><south>47.3</south><east>8.6</east><west>8.5</west></LatLonAltBox>
        <Lod><minLodPixels>128</minLodPixels></Lod>
      </Region>
      <MultiGeometry>
        <Polygon>
          <outerBoundaryIs><LinearRing><coordinates>8.5,47.3 8.6,47.3 8.6,47.4 8.5,47.3</coordinates></LinearRing></outerBoundaryIs>
          <innerBoundaryIs><LinearRing><coordinates>8.52,47.32 8.53,47.32 8.52,47.33 8.52,47.32</coordinates></LinearRing></innerBoundaryIs>
        </Polygon>
        <Model id="m1">
          <Location><longitude>8.55</longitude><latitude>47.35</latitude><altitude>400</altitude></Location>
          <Orientation><heading>90</heading></Orientation>
          <Scale><x>2</x></Scale>
          <Link><href>tower.dae</href></Link>
          <ResourceMap><Alias><targetHref>t.png</targetHref><sourceHref>../t.png</sourceHref></Alias></ResourceMap>
        </Model>
      </MultiGeometry>
    </Placemark>
  </Folder>
  <NetworkLink>
    <name>Live</name>
    <flyToView>1</flyToView>
    <Url><href>http://example.org/live.kml</href><refreshMode>onInterval</refreshMode><refreshInterval>30</refreshInterval></Url>
  </NetworkLink>
  <GroundOverlay>
    <name>Map</name>
    <color>7fffffff</color>
    <drawOrder>2</drawOrder>
    <Icon><href>map.jpg</href><viewBoundScale>0.75</viewBoundScale></Icon>
    <LatLonBox><north>47.4</north><south>47.3</south><east>8.6</east><west>8.5</west><rotation>-10</rotation></LatLonBox>
  </GroundOverlay>
  <ScreenOverlay>
    <name>Logo</name>
    <Icon><href>logo.png</href></Icon>
    <overlayXY x="0" y="1" xunits="fraction" yunits="fraction"/>
    <screenXY x="10" y="10" xunits="pixels" yunits="insetPixels"/>
    <size x="0" y="0" xunits="fraction" yunits="fraction"/>
  </ScreenOverlay>
  <PhotoOverlay>
    <name>Photo</name>
    <Camera><longitude>8.5</longitude><latitude>47.3</latitude><altitude>10</altitude><heading>180</heading><tilt>90</tilt></Camera>
    <Icon><href>photo.jpg</href></Icon>
    <ViewVolume><leftFov>-30</leftFov><rightFov>30</rightFov><bottomFov>-20</bottomFov><topFov>20</topFov><near>10</near></ViewVolume>
    <ImagePyramid><tileSize>512</tileSize><maxWidth>4096</maxWidth><maxHeight>2048</maxHeight><gridOrigin>upperLeft</gridOrigin></ImagePyramid>
    <Point><coordinates>8.5,47.3,10</coordinates></Point>
    <shape>cylinder</shape>
  </PhotoOverlay>
</Document>
</kml>`
