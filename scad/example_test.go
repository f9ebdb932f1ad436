package scad_test

import (
	"fmt"

	"github.com/ardnew/scadgen/scad"
)

func Example() {
	b := scad.NewBuilder()
	model := scad.NewScope()

	err := b.With(model, func() error {
		if _, err := scad.Cube.New(b, scad.Kw("size", []int{10, 10, 10})); err != nil {
			return err
		}

		return scad.Translate.Do(b, func() error {
			_, err := scad.Sphere.New(b, scad.Kw("r", 5))

			return err
		}, []int{20, 0, 0})
	})
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(model.Gen())
	// Output:
	// cube(size=[10, 10, 10]);
	// translate([20, 0, 0]) {
	//   sphere(r=5);
	// }
}

func ExampleOperation_Chain() {
	b := scad.NewBuilder()
	model := scad.NewScope()

	err := b.With(model, func() error {
		a, err := scad.Translate.New(b, []int{0, 0, 5})
		if err != nil {
			return err
		}

		r, err := scad.Rotate.New(b, []int{90, 0, 0})
		if err != nil {
			return err
		}

		return b.With(a.Chain(r), func() error {
			_, err := scad.Cylinder.New(b, 10, scad.Kw("d", 2.5))

			return err
		})
	})
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(model.Gen())
	// Output:
	// translate([0, 0, 5]) {
	//   rotate([90, 0, 0]) {
	//     cylinder(10, d=2.5);
	//   }
	// }
}

func ExampleModule_Call() {
	b := scad.NewBuilder()

	spoke := b.Module("spoke")
	if err := b.With(spoke, func() error {
		_, err := scad.Cube.New(b, []int{1, 10, 1})

		return err
	}); err != nil {
		fmt.Println(err)

		return
	}

	model := scad.NewScope()

	if err := b.With(model, func() error {
		for _, angle := range []int{0, 120, 240} {
			err := scad.Rotate.Do(b, func() error { return spoke.Call(b) }, []int{0, 0, angle})
			if err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(model.Gen())
	// Output:
	// module spoke() {
	//   cube([1, 10, 1]);
	// }
	// rotate([0, 0, 0]) {
	//   spoke();
	// }
	// rotate([0, 0, 120]) {
	//   spoke();
	// }
	// rotate([0, 0, 240]) {
	//   spoke();
	// }
}
