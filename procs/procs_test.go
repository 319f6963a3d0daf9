package procs

import "testing"

func TestProcs(t *testing.T) {
	var order []int
	var proc Proc[int]
	proc = Procs[int]{
		Func[int](func(base int) (Proc[int], error) {
			order = append(order, base+1)
			return Func[int](func(base int) (Proc[int], error) {
				order = append(order, base+2)
				return nil, nil
			}), nil
		}),
		Func[int](func(base int) (Proc[int], error) {
			order = append(order, base+3)
			return nil, nil
		}),
	}
	for proc != nil {
		var err error
		proc, err = proc.Run(10)
		if err != nil {
			t.Fatal(err)
		}
	}
	if len(order) != 3 ||
		order[0] != 11 ||
		order[1] != 12 ||
		order[2] != 13 {
		t.Fatalf("got %v", order)
	}
}
