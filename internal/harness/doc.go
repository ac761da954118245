// Package harness runs calculator conformance scenarios.
//
// A scenario is a YAML file that presses keys on a fresh calculator and
// checks the screen and machine state along the way:
//
//	name: chained_operators
//	description: "An operator pressed mid-expression evaluates first"
//	angle_mode: deg
//	keys:
//	  x: multiply
//	steps:
//	  - press: [2, "+", 3]
//	  - press: x
//	    expect:
//	      display: "5"
//	      history: "5 ×"
//	      phase: operand
//	  - press: [4, "="]
//	    expect:
//	      display: "20"
//	final:
//	  awaiting: true
//	  memory: 0
//
// # Expectations
//
// An expect block is a subset match: only the fields it names are checked.
// Screen fields are display, history and tier. State fields are current,
// previous, operator, awaiting, memory, angle_mode and phase. A memory of
// .nan matches a NaN register.
//
// # Determinism
//
// Each scenario runs on its own session with a fresh logical clock, so the
// trace of a scenario is identical across runs and can be compared with a
// golden file (see RunWithGolden).
//
// # Usage
//
//	scenario, err := harness.LoadScenario(afero.NewOsFs(), "testdata/scenarios/chain.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, msg := range result.Errors {
//	    log.Println(msg)
//	}
package harness
