package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowser_Redraw_PaintPlan(t *testing.T) {
	b, canvas := newTestBrowser(t, homeFS(), "/home/u", WithDebug(true))
	_, err := b.Handle(MotionEvent{Y: rowY(2)}) // hover alpha, which is not accessible
	require.NoError(t, err)

	kinds := canvas.kinds()
	require.NotEmpty(t, kinds)
	assert.Equal(t, "clear", kinds[0])
	assert.Equal(t, "present", kinds[len(kinds)-1])

	header := canvas.find("text", 0)
	require.Len(t, header, 2)
	assert.Equal(t, paintOp{kind: "text", x: 0, y: 0, text: "/home/u", color: testColors.Text}, header[0])
	assert.Equal(t, "scroll 0/0", header[1].text)
	assert.Equal(t, testColors.Debug, header[1].color)

	alphaY := rowY(2)
	var alphaOps []paintOp
	for _, op := range canvas.ops {
		if op.y == alphaY {
			alphaOps = append(alphaOps, op)
		}
	}
	assert.Equal(t, []paintOp{
		{kind: "fill", x: 0, y: alphaY, w: 40, h: 1, color: testColors.NoPermission},
		{kind: "fill", x: 0, y: alphaY, w: 40, h: 1, color: testColors.Hover},
		{kind: "text", x: 1, y: alphaY, text: "d", color: testColors.DirType},
		{kind: "text", x: 3, y: alphaY, text: "alpha", color: testColors.Text},
		{kind: "rect", x: 0, y: alphaY, w: 40, h: 1, color: testColors.Debug},
	}, alphaOps)

	betaOps := canvas.find("text", rowY(3))
	require.Len(t, betaOps, 2)
	assert.Equal(t, "f", betaOps[0].text)
	assert.Equal(t, testColors.FileType, betaOps[0].color)
	assert.Empty(t, canvas.find("fill", rowY(3)), "accessible and not hovered")

	sep := canvas.find("line", 11)
	require.Len(t, sep, 1)
	assert.Equal(t, 39, sep[0].w)
	assert.Empty(t, canvas.find("text", 12), "no status")

	alpha := b.Snapshot().At(2)
	assert.Equal(t, "alpha", alpha.Name())
	assert.Equal(t, alphaY+1, alpha.YBottom)
}

func TestBrowser_Redraw_ScrolledRowsForgetPosition(t *testing.T) {
	b, _ := newTestBrowser(t, manyFilesFS("/many", 28), "/many")
	assert.Equal(t, 2, b.Snapshot().At(0).YBottom)

	_, err := b.Handle(ButtonEvent{Button: ButtonScrollDown})
	require.NoError(t, err)
	assert.Equal(t, 0, b.Snapshot().At(0).YBottom)
	assert.Equal(t, 2, b.Snapshot().At(1).YBottom)
	assert.Equal(t, 0, b.Snapshot().At(29).YBottom, "below the viewport")
}

func TestBrowser_Redraw_Help(t *testing.T) {
	b, canvas := newTestBrowser(t, homeFS(), "/home/u")
	_, err := b.Handle(KeyEvent{Key: KeyToggleHelp})
	require.NoError(t, err)

	var texts []string
	for _, op := range canvas.ops {
		if op.kind == "text" {
			texts = append(texts, op.text)
		}
	}
	assert.Contains(t, texts, "fx - keys")
	assert.Contains(t, texts, "q       quit")
	assert.Equal(t, "present", canvas.kinds()[len(canvas.ops)-1])
}

func TestBrowser_Redraw_Stats(t *testing.T) {
	stats := &countingStats{}
	b, _ := newTestBrowser(t, homeFS(), "/home/u", WithStats(stats))
	assert.Equal(t, 1, stats.redraws)

	_, _ = b.Handle(ExposeEvent{})
	assert.Equal(t, 2, stats.redraws)
}

func TestBrowser_Resize_BackingPolicy(t *testing.T) {
	b, canvas := newTestBrowser(t, homeFS(), "/home/u")
	assert.Equal(t, 1, canvas.reallocs)

	_, _ = b.Handle(ResizeEvent{Size: Size{Width: 38, Height: 12}})
	assert.Equal(t, 1, canvas.reallocs, "small shrink keeps the surface")

	_, _ = b.Handle(ResizeEvent{Size: Size{Width: 20, Height: 6}})
	assert.Equal(t, 2, canvas.reallocs, "quarter of the area")
	assert.Equal(t, Size{Width: 20, Height: 6}, canvas.allocated)

	_, _ = b.Handle(ResizeEvent{Size: Size{Width: 21, Height: 6}})
	assert.Equal(t, 3, canvas.reallocs, "grows at once")
}
