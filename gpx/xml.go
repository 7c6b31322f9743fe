package gpx

import (
	"io"
	"strconv"
	"strings"
	"time"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

// Bytes serializes the document to GPX 1.1 XML.
func (g *GPX) Bytes() []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString("<gpx version=\"")
	b.WriteString(xmlEscape(g.Version))
	b.WriteString("\" creator=\"")
	b.WriteString(xmlEscape(g.Creator))
	b.WriteString("\" xmlns=\"http://www.topografix.com/GPX/1/1\">")
	for _, trk := range g.Tracks {
		writeTrackXML(&b, trk)
	}
	b.WriteString("</gpx>")
	return []byte(b.String())
}

// WriteXML serializes the document to w.
func (g *GPX) WriteXML(w io.Writer) error {
	_, err := w.Write(g.Bytes())
	return err
}

func writeTrackXML(b *strings.Builder, trk Track) {
	b.WriteString("<trk>")
	if trk.Name != "" {
		b.WriteString("<name>")
		b.WriteString(xmlEscape(trk.Name))
		b.WriteString("</name>")
	}
	if trk.Description != "" {
		b.WriteString("<desc>")
		b.WriteString(xmlEscape(trk.Description))
		b.WriteString("</desc>")
	}
	if trk.Source != "" {
		b.WriteString("<src>")
		b.WriteString(xmlEscape(trk.Source))
		b.WriteString("</src>")
	}
	for _, seg := range trk.Segments {
		b.WriteString("<trkseg>")
		for _, pt := range seg.Points {
			writeWaypointXML(b, pt)
		}
		b.WriteString("</trkseg>")
	}
	b.WriteString("</trk>")
}

func writeWaypointXML(b *strings.Builder, pt Waypoint) {
	b.WriteString("<trkpt lat=\"")
	b.WriteString(strconv.FormatFloat(pt.Point.Lat(), 'f', -1, 64))
	b.WriteString("\" lon=\"")
	b.WriteString(strconv.FormatFloat(pt.Point.Lon(), 'f', -1, 64))
	b.WriteString("\">")
	if pt.Elevation != nil {
		b.WriteString("<ele>")
		b.WriteString(strconv.FormatFloat(*pt.Elevation, 'f', -1, 64))
		b.WriteString("</ele>")
	}
	if pt.Time != nil {
		b.WriteString("<time>")
		b.WriteString(pt.Time.UTC().Format(time.RFC3339))
		b.WriteString("</time>")
	}
	if pt.Speed != nil {
		b.WriteString("<speed>")
		b.WriteString(strconv.FormatFloat(*pt.Speed, 'f', -1, 64))
		b.WriteString("</speed>")
	}
	b.WriteString("</trkpt>")
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
