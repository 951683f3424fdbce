// Package artifact reads and writes self-describing chart files.
//
// A chart artifact is an ordinary SVG document whose first child is an XML
// comment holding the chart's full JSON state (see package io). Any SVG
// viewer displays the picture; chartr reads the comment back to recover the
// chart and keep editing it. No sidecar files are involved.
//
//	<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 765 125" ...>
//	<!-- {"options":{...},"actors":[...]} -->
//	  <defs>...</defs>
//	  ...
//	</svg>
//
// XML comments may not contain "--", so the payload escapes every hyphen
// pair as `-\u002d`, which JSON decodes back to the same text.
//
// [Save] writes through a temporary file in the target directory and renames
// it into place, so a failed write never leaves a truncated chart behind.
package artifact
