package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html>
<head>
<title> Example Page </title>
<meta name="description" content="a test page">
</head>
<body>
<h1>Top</h1>
<h2>Sub one</h2>
<h2>Sub two</h2>
<p>  first paragraph  </p>
<p>second paragraph</p>
<a href="https://example.com/a">link a</a>
<a name="anchor-without-href">no href</a>
<a href="/b">link b</a>
<img src="/logo.png">
<img alt="no src">
</body>
</html>`

func TestSelectEmptyOnNoMatch(t *testing.T) {
	nodes := Select(page, "article")
	require.NotNil(t, nodes)
	assert.Empty(t, nodes)
}

func TestSelectMalformedSelector(t *testing.T) {
	assert.Empty(t, Select(page, "p["))
}

func TestSelectAndText(t *testing.T) {
	nodes := Select(page, "p")
	require.Len(t, nodes, 2)
	assert.Equal(t, []string{"first paragraph", "second paragraph"}, Text(nodes))
}

func TestHrefsSkipMissing(t *testing.T) {
	hrefs := Hrefs(Select(page, "a"))
	assert.Equal(t, []string{"https://example.com/a", "/b"}, hrefs)
	assert.Equal(t, hrefs, Links(page))
}

func TestImagesSkipMissingSrc(t *testing.T) {
	assert.Equal(t, []string{"/logo.png"}, Images(page))
}

func TestMetaDescription(t *testing.T) {
	assert.Equal(t, "a test page", MetaDescription(page))
	assert.Equal(t, NoDescription, MetaDescription("<html><head></head></html>"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Example Page", Title(page))
	assert.Equal(t, "", Title("<p>no title</p>"))
}

func TestHeadings(t *testing.T) {
	assert.Equal(t, []string{"Top"}, Headings(page, 1))
	assert.Equal(t, []string{"Sub one", "Sub two"}, Headings(page, 2))
	assert.Empty(t, Headings(page, 3))
	assert.Empty(t, Headings(page, 0))
	assert.Empty(t, Headings(page, 7))
}

func TestParagraphs(t *testing.T) {
	assert.Equal(t, []string{"first paragraph", "second paragraph"}, Paragraphs(page))
}

func TestFindText(t *testing.T) {
	hits := FindText(page, "PARAGRAPH")
	assert.Equal(t, []string{"first paragraph", "second paragraph"}, hits)
	assert.Empty(t, FindText(page, "absent keyword"))
}

func TestFindTextSkipsScript(t *testing.T) {
	html := `<body><script>var keyword = 1;</script><p>keyword here</p></body>`
	assert.Equal(t, []string{"keyword here"}, FindText(html, "keyword"))
}

func TestTables(t *testing.T) {
	html := `<table><tr><td>a</td><td>b</td></tr><tr><td>c</td><td>d</td></tr></table>`
	want := [][][]string{{{"a", "b"}, {"c", "d"}}}
	assert.Equal(t, want, Tables(html))
}

func TestTablesWithHeaderCells(t *testing.T) {
	html := `<table>
<tr><th>name</th><th>score</th></tr>
<tr><td>x</td><td>1</td></tr>
</table>
<table><tr><td>only</td></tr></table>`
	want := [][][]string{
		{{"name", "score"}, {"x", "1"}},
		{{"only"}},
	}
	assert.Equal(t, want, Tables(html))
}

func TestTablesEmpty(t *testing.T) {
	assert.Empty(t, Tables("<p>no tables</p>"))
}
