// Package plotting renders training diagnostics to image files.
package plotting

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/parridge/parridge/linear"
	"github.com/parridge/parridge/pkg/errors"
)

// Convergence renders the objective value and gradient norm per
// gradient-descent iteration to path. The output format follows the
// file extension (png, svg, pdf, ...).
func Convergence(history []linear.Iteration, path string) error {
	if len(history) == 0 {
		return errors.NewValueError("plotting.Convergence", "empty history")
	}

	p := plot.New()
	p.Title.Text = "Gradient descent convergence"
	p.X.Label.Text = "iteration"
	p.Legend.Top = true

	objective := make(plotter.XYs, len(history))
	gradNorm := make(plotter.XYs, len(history))
	for i, it := range history {
		objective[i] = plotter.XY{X: float64(it.K), Y: it.Objective}
		gradNorm[i] = plotter.XY{X: float64(it.K), Y: it.GradNorm}
	}

	if err := plotutil.AddLines(p, "F(β)", objective, "‖∇F(β)‖", gradNorm); err != nil {
		return errors.Wrap(err, "building convergence plot")
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "saving convergence plot")
	}
	return nil
}
