// Package extract locates the GDP table in the source document and turns its
// qualifying rows into records.
package extract

import (
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/net/html"

	"github.com/worldecon/gdp-cli/internal/model"
)

// missingMarker is the em-dash the source uses for an absent GDP figure.
// The check is containment, not equality: any cell text containing the
// marker excludes the row.
const missingMarker = "—"

// ErrTableMissing reports that the document holds fewer table bodies than
// the selection index requires.
var ErrTableMissing = eris.New("extract: table body index out of range")

// Options configures table selection.
type Options struct {
	// TableIndex is the zero-based position of the target tbody among all
	// tbody elements in document order.
	TableIndex int
}

// DefaultOptions selects the third table body, where the source page keeps
// the countries-by-GDP table.
func DefaultOptions() Options {
	return Options{TableIndex: 2}
}

// Records parses the document body and extracts one Record per qualifying
// row of the selected table, preserving row order. A row qualifies when it
// has data cells, its first cell carries a hyperlink (aggregate rows do
// not), and its third cell does not contain the missing-data marker.
func Records(body string, opts Options) ([]model.Record, error) {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "extract: parse document")
	}

	bodies := collectElements(doc, "tbody")
	if len(bodies) <= opts.TableIndex {
		return nil, eris.Wrapf(ErrTableMissing, "extract: need %d table bodies, document has %d",
			opts.TableIndex+1, len(bodies))
	}

	var records []model.Record
	for _, row := range childElements(bodies[opts.TableIndex], "tr") {
		cells := childElements(row, "td")
		if len(cells) == 0 {
			continue // header or separator row
		}
		link := findElement(cells[0], "a")
		if link == nil {
			continue // aggregate row, e.g. "World"
		}
		if len(cells) < 3 {
			continue
		}
		gdp := strings.TrimSpace(nodeText(cells[2]))
		if strings.Contains(gdp, missingMarker) {
			continue
		}
		records = append(records, model.Record{
			Country: strings.TrimSpace(nodeText(link)),
			GDPRaw:  gdp,
		})
	}

	return records, nil
}

// collectElements returns all elements with the given tag, in document order.
func collectElements(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// childElements returns the direct child elements with the given tag.
func childElements(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			out = append(out, c)
		}
	}
	return out
}

// findElement returns the first descendant element with the given tag.
func findElement(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// nodeText concatenates the text nodes beneath n.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
