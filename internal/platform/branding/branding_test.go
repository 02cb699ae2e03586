package branding

import "testing"

func TestAppName(t *testing.T) {
	if AppName != "Mentoria Acelera Clínicas" {
		t.Fatalf("AppName = %q, want %q", AppName, "Mentoria Acelera Clínicas")
	}
}

func TestTitleSuffix(t *testing.T) {
	if got := TitleSuffix("O Próximo Passo"); got != "O Próximo Passo | "+AppName {
		t.Fatalf("TitleSuffix() = %q", got)
	}
	if got := TitleSuffix(""); got != AppName {
		t.Fatalf("TitleSuffix(\"\") = %q, want %q", got, AppName)
	}
}
