package router

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		question string
		want     Hint
	}{
		{"What are your hobbies?", HintPersonal},
		{"Do you like music or travel?", HintPersonal},
		{"Where do you work?", HintResume},
		{"Tell me about your education and skills", HintResume},
		{"Do your hobbies help with your work?", HintBoth},
		{"What is the meaning of life?", HintUnknown},
		{"", HintUnknown},
	}
	for _, tc := range cases {
		if got := Classify(tc.question); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.question, got, tc.want)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("WHERE DO YOU WORK?"); got != HintResume {
		t.Errorf("uppercase question classified as %s", got)
	}
}

func TestEnsureTermsTrigger(t *testing.T) {
	rules := DefaultEnsureRules()
	got := rules.Terms("What do you work on at Fynd?")
	want := []string{"ratl.ai", "ratl"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Terms = %v, want %v", got, want)
	}
}

func TestEnsureTermsNoTrigger(t *testing.T) {
	rules := DefaultEnsureRules()
	if got := rules.Terms("What are your hobbies?"); len(got) != 0 {
		t.Errorf("expected no terms, got %v", got)
	}
}

func TestEnsureTermsDeterministic(t *testing.T) {
	rules := EnsureRules{
		"beta":  {"two"},
		"alpha": {"one"},
	}
	got := rules.Terms("alpha and beta both appear")
	want := []string{"one", "two"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Terms = %v, want %v (trigger order)", got, want)
	}
}

func TestEnsureTermsDeduplicated(t *testing.T) {
	rules := EnsureRules{
		"alpha": {"shared", "one"},
		"beta":  {"shared", "two"},
	}
	got := rules.Terms("alpha beta")
	want := []string{"shared", "one", "two"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Terms = %v, want %v", got, want)
	}
}

func TestIndicatorSetsDisjoint(t *testing.T) {
	for _, p := range personalIndicators {
		for _, r := range resumeIndicators {
			if p == r {
				t.Errorf("indicator %q appears in both sets", p)
			}
		}
	}
}
