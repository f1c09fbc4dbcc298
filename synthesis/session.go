package synthesis

import (
	"context"
	"image"
	"math"
	"math/rand"

	"github.com/sfomuseum/go-sfomuseum-styletransfer"
	"golang.org/x/sync/errgroup"
)

// coord addresses pixel (x, y) of example e.
type coord struct {
	e int
	x int
	y int
}

type offset struct {
	x int
	y int
}

var coherence_offsets = []offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Session is a configured synthesis run. Each output pixel is assigned a source pixel in
// one of the examples. A first pass assigns sources by guide similarity alone; every
// following pass re-evaluates the current source, the sources propagated from each
// neighbour and a handful of random sources against the previous pass's output.
type Session struct {
	engine   *Engine
	guide    *raster
	examples []*raster
	alpha    float32
	width    int
	height   int
}

// Run synthesizes a new image. It blocks until every pass has completed or ctx is done.
func (s *Session) Run(ctx context.Context) (styletransfer.Generated, error) {

	n := s.width * s.height

	guide := s.normalizedGuide()
	neighbourhood := squareOffsets(s.engine.radius)

	src := make([]coord, n)

	s.engine.logger.WithField("pass", 0).Debug("Synthesize")

	err := s.pass(ctx, 0, guide, neighbourhood, nil, nil, src)

	if err != nil {
		return nil, err
	}

	for i := 1; i <= s.engine.iterations; i++ {

		s.engine.logger.WithField("pass", i).Debug("Synthesize")

		prev_rgb := s.render(src)
		next := make([]coord, n)

		err := s.pass(ctx, i, guide, neighbourhood, src, prev_rgb, next)

		if err != nil {
			return nil, err
		}

		src = next
	}

	g := &Generated{
		image: s.compose(src),
	}

	return g, nil
}

// pass assigns a source to every output pixel, writing into next. Rows are independent of
// one another because they only read prev and prev_rgb.
func (s *Session) pass(ctx context.Context, iteration int, guide []float32, neighbourhood []offset, prev []coord, prev_rgb []float32, next []coord) error {

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.engine.workers)

	for y := 0; y < s.height; y++ {

		y := y

		g.Go(func() error {

			err := gctx.Err()

			if err != nil {
				return err
			}

			seed := s.engine.seed + int64(iteration)*1000003 + int64(y)*7919
			rng := rand.New(rand.NewSource(seed))

			for x := 0; x < s.width; x++ {
				next[y*s.width+x] = s.best(rng, x, y, guide, neighbourhood, prev, prev_rgb)
			}

			return nil
		})
	}

	return g.Wait()
}

func (s *Session) best(rng *rand.Rand, x int, y int, guide []float32, neighbourhood []offset, prev []coord, prev_rgb []float32) coord {

	var best coord
	best_cost := float32(math.MaxFloat32)

	consider := func(c coord) {

		cost := s.cost(x, y, c, guide, neighbourhood, prev_rgb)

		if cost < best_cost {
			best = c
			best_cost = cost
		}
	}

	random_count := s.engine.candidates

	if prev == nil {
		random_count = random_count * 4
	} else {

		consider(prev[y*s.width+x])

		for _, o := range coherence_offsets {

			nx := x + o.x
			ny := y + o.y

			if !s.contains(nx, ny) {
				continue
			}

			nb := prev[ny*s.width+nx]

			c := coord{
				e: nb.e,
				x: nb.x - o.x,
				y: nb.y - o.y,
			}

			if s.contains(c.x, c.y) {
				consider(c)
			}
		}
	}

	for i := 0; i < random_count; i++ {

		c := coord{
			e: rng.Intn(len(s.examples)),
			x: rng.Intn(s.width),
			y: rng.Intn(s.height),
		}

		consider(c)
	}

	return best
}

// cost compares the neighbourhood of output pixel (x, y) with the neighbourhood of
// candidate c. Without a previous output only the guide term is used.
func (s *Session) cost(x int, y int, c coord, guide []float32, neighbourhood []offset, prev_rgb []float32) float32 {

	ex := s.examples[c.e]

	var guide_sum float32
	var texture_sum float32
	count := 0

	for _, o := range neighbourhood {

		px := x + o.x
		py := y + o.y

		if !s.contains(px, py) {
			continue
		}

		sx := c.x + o.x
		sy := c.y + o.y

		if !s.contains(sx, sy) {
			continue
		}

		pi := py*s.width + px
		si := sy*s.width + sx

		d := guide[pi] - ex.luma[si]
		guide_sum += d * d

		if prev_rgb != nil {
			for k := 0; k < 3; k++ {
				d := prev_rgb[pi*3+k] - ex.rgb[si*3+k]
				texture_sum += d * d
			}
		}

		count++
	}

	if count == 0 {
		return float32(math.MaxFloat32)
	}

	guide_cost := guide_sum / float32(count)

	if prev_rgb == nil {
		return guide_cost
	}

	texture_cost := texture_sum / float32(count*3)

	return (1.0-s.alpha)*texture_cost + s.alpha*guide_cost
}

func (s *Session) contains(x int, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

// normalizedGuide returns the guide's luminance remapped to the mean and spread of the
// examples' luminance, so dark styles can follow bright guides and vice versa.
func (s *Session) normalizedGuide() []float32 {

	guide_mean, guide_std := meanStd(s.guide.luma)

	pooled := make([]float32, 0, len(s.examples)*s.width*s.height)

	for _, ex := range s.examples {
		pooled = append(pooled, ex.luma...)
	}

	ex_mean, ex_std := meanStd(pooled)

	out := make([]float32, len(s.guide.luma))

	for i, v := range s.guide.luma {

		if guide_std < 1e-6 {
			out[i] = ex_mean
			continue
		}

		out[i] = (v-guide_mean)/guide_std*ex_std + ex_mean
	}

	return out
}

func (s *Session) render(src []coord) []float32 {

	rgb := make([]float32, len(src)*3)

	for i, c := range src {
		ex := s.examples[c.e]
		si := c.y*s.width + c.x
		copy(rgb[i*3:i*3+3], ex.rgb[si*3:si*3+3])
	}

	return rgb
}

func (s *Session) compose(src []coord) *image.RGBA {

	im := image.NewRGBA(image.Rect(0, 0, s.width, s.height))

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {

			c := src[y*s.width+x]
			ex := s.examples[c.e].src

			so := ex.PixOffset(c.x, c.y)
			do := im.PixOffset(x, y)

			copy(im.Pix[do:do+4], ex.Pix[so:so+4])
		}
	}

	return im
}

func squareOffsets(radius int) []offset {

	offsets := make([]offset, 0, (2*radius+1)*(2*radius+1))

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			offsets = append(offsets, offset{dx, dy})
		}
	}

	return offsets
}

func meanStd(values []float32) (float32, float32) {

	if len(values) == 0 {
		return 0, 0
	}

	var sum float64

	for _, v := range values {
		sum += float64(v)
	}

	mean := sum / float64(len(values))

	var sq float64

	for _, v := range values {
		d := float64(v) - mean
		sq += d * d
	}

	std := math.Sqrt(sq / float64(len(values)))

	return float32(mean), float32(std)
}
