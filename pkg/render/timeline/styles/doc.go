// Package styles provides the static visual chrome of a timeline chart.
//
// The chart's appearance is a fixed stylesheet: span opacity and hover
// highlighting, stroke weights for grid lines versus sublines, and the font
// classes used for the heading, lane labels and grid labels. The stylesheet
// has no configuration surface; geometry is controlled entirely by
// [layout.Options].
//
// The package also measures text with the embedded Go Regular font, which
// the layout engine uses to fit wide headings.
//
// [layout.Options]: github.com/matzehuels/chartr/pkg/render/timeline/layout.Options
package styles
