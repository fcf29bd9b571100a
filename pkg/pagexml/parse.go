package pagexml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/charmap"
)

// Parse converts raw PAGE XML data into a structured Document.
//
// TextLine elements are collected from anywhere in the tree, in document
// order. For each line only the first Unicode descendant is recorded;
// PAGE allows a TextEquiv both on the line and on its words, and the
// first one encountered is the authoritative reading.
func Parse(data []byte) (Document, error) {
	var result Document

	root, err := decode(data)
	if err != nil {
		return result, err
	}

	if meta := findFirst(root, "Metadata"); meta != nil {
		result.Metadata = Metadata{
			Creator:    elementText(meta, "Creator"),
			Created:    elementText(meta, "Created"),
			LastChange: elementText(meta, "LastChange"),
		}
	}

	if page := findFirst(root, "Page"); page != nil {
		result.Page = Page{
			ImageFilename: attrValue(page, "imageFilename"),
		}
		result.Page.ImageWidth, _ = strconv.Atoi(attrValue(page, "imageWidth"))
		result.Page.ImageHeight, _ = strconv.Atoi(attrValue(page, "imageHeight"))
	}

	for _, node := range findAll(root, "TextLine", nil) {
		line := TextLine{ID: attrValue(node, "id")}
		if u := findFirst(node, "Unicode"); u != nil {
			text := u.text
			line.Unicode = &text
		}
		result.Lines = append(result.Lines, line)
	}

	return result, nil
}

// element is a minimal namespace-qualified XML tree node
type element struct {
	name     xml.Name
	attrs    []xml.Attr
	text     string // character data directly inside this element
	children []*element
}

// decode builds the element tree from raw XML data.
// Any syntax error aborts the whole parse; callers decide how to
// degrade (the scanner treats unparseable pages as non-empty).
func decode(data []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader

	var root *element
	var stack []*element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{name: t.Name, attrs: t.Attr}
			if len(stack) == 0 {
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += string(t)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("no root element found in PAGE data")
	}
	return root, nil
}

// charsetReader resolves the XML encoding declaration.
// Unknown labels fall back to ISO-8859-1, which covers the stray
// Latin-1 exports that turn up in older transcription corpora.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	r, err := charset.NewReaderLabel(label, input)
	if err != nil {
		return charmap.ISO8859_1.NewDecoder().Reader(input), nil
	}
	return r, nil
}

// findAll collects every descendant of n with the given local name in
// the PAGE namespace, in document order. Matches nested inside other
// matches are included.
func findAll(n *element, local string, out []*element) []*element {
	for _, c := range n.children {
		if c.name.Space == Namespace && c.name.Local == local {
			out = append(out, c)
		}
		out = findAll(c, local, out)
	}
	return out
}

// findFirst returns the first descendant of n with the given local name
// in the PAGE namespace, or nil.
func findFirst(n *element, local string) *element {
	for _, c := range n.children {
		if c.name.Space == Namespace && c.name.Local == local {
			return c
		}
		if found := findFirst(c, local); found != nil {
			return found
		}
	}
	return nil
}

// attrValue returns the named attribute's value, or "" when absent.
// PAGE attributes are unprefixed, so the namespace is not checked.
func attrValue(n *element, name string) string {
	for _, a := range n.attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// elementText returns the text of the first matching descendant, or "".
func elementText(n *element, local string) string {
	if c := findFirst(n, local); c != nil {
		return c.text
	}
	return ""
}
