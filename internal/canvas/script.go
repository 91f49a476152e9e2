// Package canvas templates the client-side typing animation script. The
// server only substitutes configuration values; the script executes in the
// browser as `new Function('canvas','textData', script)`.
package canvas

import (
	"strings"
	"text/template"
)

type ScriptConfig struct {
	Width       int
	Height      int
	Background  string
	Bubble      string
	TextColor   string
	Author      string
	Font        string
	LineHeight  int
	TypingSpeed int // characters per second
}

func DefaultScriptConfig() ScriptConfig {
	return ScriptConfig{
		Width:       600,
		Height:      160,
		Background:  "#0f172a",
		Bubble:      "#ffffff",
		TextColor:   "#0b1220",
		Author:      "Assistant",
		Font:        "16px Arial",
		LineHeight:  22,
		TypingSpeed: 40,
	}
}

var scriptTemplate = template.Must(template.New("canvas").Parse(`
// canvas, textData => render typed bubble
(function(){
  const CANVAS_W = {{.Width}}, CANVAS_H = {{.Height}};
  const BACKGROUND = "{{.Background}}";
  const BUBBLE = "{{.Bubble}}";
  const TEXTCOLOR = "{{.TextColor}}";
  const AUTHOR = "{{.Author}}";
  const FONT = "{{.Font}}";
  const LINEHEIGHT = {{.LineHeight}};
  const SPEED = {{.TypingSpeed}}; // chars/sec

  // DPR scaling
  const DPR = window.devicePixelRatio || 1;
  canvas.width = CANVAS_W * DPR; canvas.height = CANVAS_H * DPR;
  canvas.style.width = CANVAS_W + 'px'; canvas.style.height = CANVAS_H + 'px';
  const ctx = canvas.getContext('2d');
  ctx.scale(DPR, DPR);
  ctx.textBaseline = 'top';
  ctx.font = FONT;

  // utility: draw rounded rect (path)
  function roundRectPath(x,y,w,h,r) {
    ctx.beginPath();
    ctx.moveTo(x+r,y);
    ctx.arcTo(x+w,y,x+w,y+h,r);
    ctx.arcTo(x+w,y+h,x,y+h,r);
    ctx.arcTo(x,y+h,x,y,r);
    ctx.arcTo(x,y,x+w,y,r);
    ctx.closePath();
  }

  // wrap text into lines given width
  function wrapText(text, maxWidth) {
    const words = text.split(/(\s+)/); // keep whitespace tokens
    const lines = [];
    let cur = '';
    for (let i=0;i<words.length;i++){
      const test = cur + words[i];
      const metrics = ctx.measureText(test);
      if (metrics.width > maxWidth && cur.length>0) {
        lines.push(cur.trimEnd());
        cur = words[i];
      } else {
        cur = test;
      }
    }
    if (cur.trim().length) lines.push(cur.trim());
    return lines;
  }

  const padding = 14;
  const bubble_w = CANVAS_W - padding*2;
  const bubble_h = CANVAS_H - padding*2;

  // source text (safe): caller provides it via textData
  const rawText = (textData && typeof textData.text === 'string') ? textData.text : '';
  // limit length to avoid infinite animations
  const safeText = rawText.length > 2000 ? rawText.slice(0,2000) + '…' : rawText;

  // build lines — measure with a temporary font
  ctx.font = FONT;
  const maxInnerW = bubble_w - 20;
  const lines = wrapText(safeText.replace(/\t/g,'    '), maxInnerW);

  // typing variables
  const totalChars = safeText.replace(/\n/g,' ').length;
  let shownChars = 0;
  const intervalMs = 1000 / Math.max(1, SPEED);

  // animation loop
  let last = performance.now();
  function step(now) {
    const dt = now - last;
    last = now;
    // advance characters based on elapsed time
    shownChars += dt * (SPEED / 1000) * 1000 / 1000; // approximate (keeps smooth)
    if (shownChars > totalChars) shownChars = totalChars;

    // background clear
    ctx.clearRect(0,0,CANVAS_W,CANVAS_H);

    // bubble shadow + bg
    ctx.fillStyle = BACKGROUND;
    ctx.fillRect(0,0,CANVAS_W,CANVAS_H);

    // bubble
    ctx.save();
    ctx.fillStyle = BUBBLE;
    ctx.shadowColor = 'rgba(2,6,23,0.15)';
    ctx.shadowBlur = 10;
    roundRectPath(padding, padding, bubble_w, bubble_h, 14);
    ctx.fill();
    ctx.restore();

    // author badge
    ctx.fillStyle = TEXTCOLOR;
    ctx.font = '12px Arial';
    ctx.fillText(AUTHOR, padding + 8, padding + 6);

    // draw typed text
    ctx.font = FONT;
    ctx.fillStyle = TEXTCOLOR;
    const txt = safeText;
    let charCount = Math.floor(shownChars);
    let y = padding + 30;
    // naive per-line slicing
    for (let i=0;i<lines.length;i++) {
      const ln = lines[i];
      const draw = ln.slice(0, Math.max(0, Math.min(charCount, ln.length)));
      ctx.fillText(draw, padding + 12, y);
      y += LINEHEIGHT;
      charCount -= ln.length;
      if (charCount <= 0 && shownChars < totalChars) break;
    }

    // cursor when still typing
    if (shownChars < totalChars) {
      const lastLine = lines[Math.max(0, Math.min(lines.length-1, Math.floor(shownChars / Math.max(1, Math.floor(maxInnerW / 8)))))];
      const cursorX = padding + 12 + ctx.measureText(lastLine ? lastLine.slice(0, Math.max(0, Math.min(Math.floor(shownChars), lastLine.length))) : '').width;
      const cursorY = y - LINEHEIGHT;
      const on = Math.floor(now / 500) % 2 === 0;
      if (on) {
        ctx.fillRect(cursorX, cursorY, 8, 2);
      }
    }

    // done?
    if (shownChars < totalChars) {
      requestAnimationFrame(step);
    }
  }

  // start animation
  requestAnimationFrame(step);
})();
`))

// BuildScript renders the animation routine for the given configuration.
func BuildScript(cfg ScriptConfig) string {
	var buf strings.Builder
	// the template only formats ints and strings; execution cannot fail
	_ = scriptTemplate.Execute(&buf, cfg)
	return buf.String()
}
