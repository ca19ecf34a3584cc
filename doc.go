// Package countdown renders a countdown to a deadline as a looping
// animated GIF.
//
// # Overview
//
// Each frame shows the time left as separator-delimited fields, for
// example "02|13|59|07" (days, hours, minutes, seconds). One frame is
// rendered per simulated second, starting at the current second and
// stopping at the deadline or after Config.AmountOfSeconds+1 frames.
// An animation that reaches the deadline ends on an all-zero frame and
// plays once; one that runs out of frames first loops forever.
//
// # Quick Start
//
//	cfg := countdown.DefaultConfig()
//	cfg.FontFilePath = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
//	cfg.Deadline = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
//
//	gif, err := countdown.Render(ctx, cfg)
//
// # Layout
//
// Every digit occupies a slot as wide as the widest digit glyph, so the
// clock does not jitter as digits change. Narrower glyphs and the
// separator are centered in their slot. Separators get
// Config.SeparatorSpacing on both sides instead of Config.Spacing.
//
// Without a background image the canvas is exactly as wide as the text
// plus horizontal padding. Its height comes from measuring all digits and
// the separator at FontSize + 2*PaddingVertical. With a background image
// the image size wins and the text block is centered vertically on it.
//
// # Backends
//
// Fonts are handled by package text, canvases by internal/canvas and GIF
// encoding by package anim. Tests and callers can replace the font and
// encoder with WithFontBackend and WithEncoder.
package countdown
