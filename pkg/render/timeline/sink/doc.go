// Package sink writes a computed timeline [layout.Scene] as an SVG document.
//
// The document structure is fixed:
//
//	<svg ...>
//	<!-- annotation -->          (optional, see WithAnnotation)
//	  <defs><style>...</style></defs>
//	  <text class="heading">...  (one per heading line)
//	  <g transform="translate(x, y)">
//	    grid lines and labels
//	    <g class="actor">...</g> (one per lane)
//	  </g>
//	</svg>
//
// The annotation is written before any visual element so that decoders can
// find it by scanning the top-level nodes in document order.
//
// [layout.Scene]: github.com/matzehuels/chartr/pkg/render/timeline/layout.Scene
package sink
