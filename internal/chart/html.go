package chart

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"
)

type frameRow struct {
	Y     float64 `json:"y"`
	Found bool    `json:"found"`
	Text  string  `json:"text"`
}

type frame struct {
	Left float64    `json:"left"`
	Date string     `json:"date"`
	Rows []frameRow `json:"rows"`
}

type pageData struct {
	MarginLeft float64 `json:"marginLeft"`
	Height     float64 `json:"height"`
	Frames     []frame `json:"frames"`
}

func cursorTable(g *Graph) pageData {
	cursors := g.CursorFrames()
	data := pageData{
		MarginLeft: g.layout.Margin.Left,
		Height:     g.layout.Height,
		Frames:     make([]frame, len(cursors)),
	}
	for i, cur := range cursors {
		f := frame{Left: cur.Left, Date: TooltipHeading(cur), Rows: make([]frameRow, len(cur.Points))}
		for j, cp := range cur.Points {
			f.Rows[j] = frameRow{Y: cp.Y, Found: cp.Found, Text: TooltipRow(cp)}
		}
		data.Frames[i] = f
	}
	return data
}

// RenderHTML writes a self-contained page: legend, inline SVG chart, tooltip
// and the per-column cursor table the hover script reads.
func RenderHTML(w io.Writer, g *Graph) error {
	data, err := json.Marshal(cursorTable(g))
	if err != nil {
		return fmt.Errorf("encode cursor table: %w", err)
	}
	var svg strings.Builder
	if err := RenderSVG(&svg, g, nil); err != nil {
		return fmt.Errorf("render svg: %w", err)
	}

	var b strings.Builder
	b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(g.Title))
	b.WriteString(pageStyle)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<div class=\"graph\" style=\"width:%spx\">\n", num(g.layout.Width))
	b.WriteString("<div class=\"legend\">\n")
	fmt.Fprintf(&b, "<div class=\"title\">%s</div>\n", html.EscapeString(g.Title))
	for _, it := range g.Legend() {
		fmt.Fprintf(&b, "<div class=\"item\"><span class=\"dot\" style=\"background:%s\"></span>%s</div>\n",
			html.EscapeString(it.Color), html.EscapeString(it.Label))
	}
	b.WriteString("</div>\n")
	b.WriteString(svg.String())
	b.WriteString("<div id=\"tooltip\" class=\"tooltip\"></div>\n</div>\n")
	b.WriteString("<script type=\"application/json\" id=\"cursor-data\">")
	b.Write(data)
	b.WriteString("</script>\n")
	b.WriteString(hoverScript)
	b.WriteString("</body>\n</html>\n")

	_, err = io.WriteString(w, b.String())
	return err
}

const pageStyle = `<style>
body { margin: 0; padding: 16px; font-family: Arial, sans-serif; }
.graph { position: relative; }
.legend { display: flex; align-items: center; gap: 16px; font-size: 14px; margin-bottom: 8px; }
.legend .title { font-weight: bold; font-size: 16px; margin-right: 8px; }
.legend .item { display: flex; align-items: center; }
.legend .dot { display: inline-block; width: 10px; height: 10px; border-radius: 50%; margin-right: 6px; }
.tooltip { display: none; position: absolute; pointer-events: none; background: rgba(255,255,255,0.8);
  border: 1px solid #000; padding: 6px 8px; font-size: 12px; white-space: nowrap; }
.tooltip .date { font-weight: bold; margin-bottom: 4px; }
</style>
`

const hoverScript = `<script>
(function () {
  var data = JSON.parse(document.getElementById("cursor-data").textContent);
  var svg = document.getElementById("chart");
  var overlay = document.getElementById("overlay");
  var hover = document.getElementById("hover");
  var cross = document.getElementById("crosshair");
  var dots = hover.querySelectorAll("circle");
  var tip = document.getElementById("tooltip");

  function column(evt) {
    var pt = svg.createSVGPoint();
    pt.x = evt.clientX;
    pt.y = evt.clientY;
    var local = pt.matrixTransform(svg.getScreenCTM().inverse());
    var col = Math.round(local.x - data.marginLeft);
    return Math.max(0, Math.min(data.frames.length - 1, col));
  }

  overlay.addEventListener("mousemove", function (evt) {
    var f = data.frames[column(evt)];
    cross.setAttribute("x1", f.left);
    cross.setAttribute("x2", f.left);
    f.rows.forEach(function (r, i) {
      var c = dots[i];
      if (!c) return;
      c.setAttribute("cx", f.left);
      c.setAttribute("cy", r.y);
      c.style.display = r.found ? "" : "none";
    });
    hover.style.display = "";

    tip.textContent = "";
    var head = document.createElement("div");
    head.className = "date";
    head.textContent = f.date;
    tip.appendChild(head);
    f.rows.forEach(function (r) {
      var row = document.createElement("div");
      row.textContent = r.text;
      tip.appendChild(row);
    });
    tip.style.left = (f.left + data.marginLeft + 30) + "px";
    tip.style.top = "40px";
    tip.style.display = "block";
  });

  overlay.addEventListener("mouseleave", function () {
    hover.style.display = "none";
    tip.style.display = "none";
  });
})();
</script>
`
