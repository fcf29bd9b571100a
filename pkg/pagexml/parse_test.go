package pagexml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const transcribedPage = `<?xml version="1.0" encoding="UTF-8"?>
<PcGts xmlns="http://schema.primaresearch.org/PAGE/gts/pagecontent/2013-07-15">
  <Metadata>
    <Creator>Transkribus</Creator>
    <Created>2023-04-12T09:30:00</Created>
    <LastChange>2023-05-01T14:12:45</LastChange>
  </Metadata>
  <Page imageFilename="scan_0001.jpg" imageWidth="2480" imageHeight="3508">
    <TextRegion id="r1">
      <Coords points="0,0 2480,0 2480,3508 0,3508"/>
      <TextLine id="r1l1">
        <Coords points="10,10 600,10 600,60 10,60"/>
        <Word id="r1l1w1">
          <TextEquiv><Unicode>Hello</Unicode></TextEquiv>
        </Word>
        <TextEquiv><Unicode>Hello world</Unicode></TextEquiv>
      </TextLine>
      <TextLine id="r1l2">
        <TextEquiv><Unicode>   </Unicode></TextEquiv>
      </TextLine>
    </TextRegion>
  </Page>
</PcGts>`

const blankPage = `<?xml version="1.0" encoding="UTF-8"?>
<PcGts xmlns="http://schema.primaresearch.org/PAGE/gts/pagecontent/2013-07-15">
  <Page imageFilename="scan_0002.jpg" imageWidth="2480" imageHeight="3508">
    <TextRegion id="r1">
      <Coords points="0,0 2480,0 2480,3508 0,3508"/>
    </TextRegion>
  </Page>
</PcGts>`

func TestParseCollectsLinesInDocumentOrder(t *testing.T) {
	doc, err := Parse([]byte(transcribedPage))
	require.NoError(t, err)

	require.Len(t, doc.Lines, 2)
	require.Equal(t, "r1l1", doc.Lines[0].ID)
	require.Equal(t, "r1l2", doc.Lines[1].ID)
}

func TestParseRecordsFirstUnicodeDescendant(t *testing.T) {
	doc, err := Parse([]byte(transcribedPage))
	require.NoError(t, err)

	// The word-level Unicode precedes the line-level TextEquiv in
	// document order, so it is the one recorded.
	require.NotNil(t, doc.Lines[0].Unicode)
	require.Equal(t, "Hello", *doc.Lines[0].Unicode)
	require.True(t, doc.Lines[0].HasText())

	require.NotNil(t, doc.Lines[1].Unicode)
	require.False(t, doc.Lines[1].HasText())
}

func TestParsePageAttributes(t *testing.T) {
	doc, err := Parse([]byte(transcribedPage))
	require.NoError(t, err)

	require.Equal(t, "scan_0001.jpg", doc.Page.ImageFilename)
	require.Equal(t, 2480, doc.Page.ImageWidth)
	require.Equal(t, 3508, doc.Page.ImageHeight)
}

func TestParseMetadata(t *testing.T) {
	doc, err := Parse([]byte(transcribedPage))
	require.NoError(t, err)

	require.Equal(t, "Transkribus", doc.Metadata.Creator)
	require.Equal(t, "2023-04-12T09:30:00", doc.Metadata.Created)
	require.Equal(t, "2023-05-01T14:12:45", doc.Metadata.LastChange)
}

func TestParseNoTextLines(t *testing.T) {
	doc, err := Parse([]byte(blankPage))
	require.NoError(t, err)
	require.Empty(t, doc.Lines)
}

func TestParseNestedRegions(t *testing.T) {
	data := `<?xml version="1.0" encoding="UTF-8"?>
<PcGts xmlns="http://schema.primaresearch.org/PAGE/gts/pagecontent/2013-07-15">
  <Page imageFilename="scan_0003.jpg">
    <TextRegion id="outer">
      <TextRegion id="inner">
        <TextLine id="deep">
          <TextEquiv><Unicode>nested</Unicode></TextEquiv>
        </TextLine>
      </TextRegion>
    </TextRegion>
  </Page>
</PcGts>`

	doc, err := Parse([]byte(data))
	require.NoError(t, err)
	require.Len(t, doc.Lines, 1)
	require.Equal(t, "deep", doc.Lines[0].ID)
	require.True(t, doc.Lines[0].HasText())
}

func TestParseIgnoresForeignNamespace(t *testing.T) {
	data := `<?xml version="1.0" encoding="UTF-8"?>
<PcGts xmlns="http://schema.primaresearch.org/PAGE/gts/pagecontent/2013-07-15"
       xmlns:alto="http://www.loc.gov/standards/alto/ns-v4#">
  <Page imageFilename="scan_0004.jpg">
    <alto:TextLine id="foreign">
      <alto:TextEquiv><alto:Unicode>should not count</alto:Unicode></alto:TextEquiv>
    </alto:TextLine>
  </Page>
</PcGts>`

	doc, err := Parse([]byte(data))
	require.NoError(t, err)
	require.Empty(t, doc.Lines)
}

func TestParseLatin1Encoding(t *testing.T) {
	// "café" with a raw 0xE9 byte, declared as ISO-8859-1.
	data := []byte(`<?xml version="1.0" encoding="ISO-8859-1"?>
<PcGts xmlns="http://schema.primaresearch.org/PAGE/gts/pagecontent/2013-07-15">
  <Page imageFilename="scan_0005.jpg">
    <TextLine id="l1">
      <TextEquiv><Unicode>caf` + "\xe9" + `</Unicode></TextEquiv>
    </TextLine>
  </Page>
</PcGts>`)

	doc, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, doc.Lines, 1)
	require.Equal(t, "café", *doc.Lines[0].Unicode)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`<PcGts><Page></PcGts>`))
	require.Error(t, err)
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse(nil)
	require.Error(t, err)
}
