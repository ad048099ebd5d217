// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package preferences

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_EmptyLayer(t *testing.T) {
	assert.NoError(t, Validate(Preferences{}, false))
}

func TestValidate_EmptyLayerIncomplete(t *testing.T) {
	err := Validate(Preferences{}, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingValue)
	assert.Contains(t, err.Error(), "app.name")
	assert.Contains(t, err.Error(), "widget.themeToggle")
}

func TestValidate_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		layer Preferences
		path  string
	}{
		{"unknown access mode", Preferences{App: App{AccessMode: Ptr(AccessMode("remote"))}}, "app.accessMode"},
		{"unknown logo fit", Preferences{Logo: Logo{Fit: Ptr(LogoFit("stretch"))}}, "logo.fit"},
		{"unknown tabbar position", Preferences{Tabbar: Tabbar{Position: Ptr(TabbarPosition("footer"))}}, "tabbar.position"},
		{"unknown builtin theme", Preferences{Theme: Theme{BuiltinType: Ptr(BuiltinTheme("neon"))}}, "theme.builtinType"},
		{"negative sidebar width", Preferences{Sidebar: Sidebar{Width: Ptr(-1)}}, "sidebar.width"},
		{"zero header height", Preferences{Header: Header{Height: Ptr(0)}}, "header.height"},
		{"negative padding", Preferences{App: App{ContentPaddingLeft: Ptr(-4)}}, "app.contentPaddingLeft"},
		{"radius above one", Preferences{Theme: Theme{Radius: Ptr("1.5")}}, "theme.radius"},
		{"radius not a number", Preferences{Theme: Theme{Radius: Ptr("round")}}, "theme.radius"},
		{"empty color", Preferences{Theme: Theme{ColorPrimary: Ptr("  ")}}, "theme.colorPrimary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.layer, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.path, fieldErr.Path)
		})
	}
}

// TestValidate_CollectsAllErrors verifies that validation does not stop at the
// first failing option.
func TestValidate_CollectsAllErrors(t *testing.T) {
	layer := Preferences{
		Theme:   Theme{Mode: Ptr(ThemeMode("sepia"))},
		Sidebar: Sidebar{MixedWidth: Ptr(-10)},
	}

	err := Validate(layer, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme.mode")
	assert.Contains(t, err.Error(), "sidebar.mixedWidth")
}

func TestValidate_BoundaryValues(t *testing.T) {
	layer := Preferences{
		Theme:   Theme{Radius: Ptr("0"), ColorWarning: Ptr("#f90")},
		Sidebar: Sidebar{CollapseWidth: Ptr(0)},
		Footer:  Footer{Height: Ptr(1)},
	}
	assert.NoError(t, Validate(layer, false))

	layer.Theme.Radius = Ptr("1")
	assert.NoError(t, Validate(layer, false))
}

func TestFieldError_Error(t *testing.T) {
	err := &FieldError{Path: "theme.mode", Value: ThemeMode("sepia"), Err: ErrInvalidValue, Reason: "not a known tag"}
	assert.Equal(t, `theme.mode: invalid option value "sepia" (not a known tag)`, err.Error())

	missing := &FieldError{Path: "logo.fit", Err: ErrMissingValue}
	assert.Equal(t, "logo.fit: option is not set", missing.Error())
}

func TestValidate_EveryDeclaredTagAccepted(t *testing.T) {
	layers := []Preferences{}
	for _, v := range []AccessMode{AccessModeFrontend, AccessModeBackend, AccessModeMixed} {
		layers = append(layers, Preferences{App: App{AccessMode: Ptr(v)}})
	}
	for _, v := range []AuthPageLayout{AuthPageLayoutPanelLeft, AuthPageLayoutPanelCenter, AuthPageLayoutPanelRight} {
		layers = append(layers, Preferences{App: App{AuthPageLayout: Ptr(v)}})
	}
	for _, v := range []ContentCompact{ContentCompactWide, ContentCompactCompact} {
		layers = append(layers, Preferences{App: App{ContentCompact: Ptr(v)}})
	}
	for _, v := range []Layout{LayoutSidebarNav, LayoutSidebarMixedNav, LayoutHeaderNav, LayoutHeaderMixedNav, LayoutHeaderSidebarNav, LayoutMixedNav, LayoutFullContent} {
		layers = append(layers, Preferences{App: App{Layout: Ptr(v)}})
	}
	for _, v := range []Locale{LocaleZhCN, LocaleEnUS} {
		layers = append(layers, Preferences{App: App{Locale: Ptr(v)}})
	}
	for _, v := range []LoginExpiredMode{LoginExpiredModeModal, LoginExpiredModePage} {
		layers = append(layers, Preferences{App: App{LoginExpiredMode: Ptr(v)}})
	}
	for _, v := range []ButtonPosition{ButtonPositionAuto, ButtonPositionFixed, ButtonPositionHeader} {
		layers = append(layers, Preferences{App: App{PreferencesButtonPosition: Ptr(v)}})
	}
	for _, v := range []BreadcrumbStyleType{BreadcrumbStyleNormal, BreadcrumbStyleBackground} {
		layers = append(layers, Preferences{Breadcrumb: Breadcrumb{StyleType: Ptr(v)}})
	}
	for _, v := range []MenuAlign{MenuAlignStart, MenuAlignCenter, MenuAlignEnd} {
		layers = append(layers, Preferences{Header: Header{MenuAlign: Ptr(v)}})
	}
	for _, v := range []HeaderMode{HeaderModeFixed, HeaderModeStatic, HeaderModeAuto, HeaderModeAutoScroll} {
		layers = append(layers, Preferences{Header: Header{Mode: Ptr(v)}})
	}
	for _, v := range []LogoFit{LogoFitContain, LogoFitCover, LogoFitFill, LogoFitNone, LogoFitScaleDown} {
		layers = append(layers, Preferences{Logo: Logo{Fit: Ptr(v)}})
	}
	for _, v := range []NavigationStyleType{NavigationStyleRounded, NavigationStylePlain} {
		layers = append(layers, Preferences{Navigation: Navigation{StyleType: Ptr(v)}})
	}
	for _, v := range []TabbarPosition{TabbarPositionHeader, TabbarPositionBreadcrumb} {
		layers = append(layers, Preferences{Tabbar: Tabbar{Position: Ptr(v)}})
	}
	for _, v := range []TabbarStyleType{TabbarStyleChrome, TabbarStylePlain, TabbarStyleCard, TabbarStyleBrisk} {
		layers = append(layers, Preferences{Tabbar: Tabbar{StyleType: Ptr(v)}})
	}
	for _, v := range []BuiltinTheme{
		BuiltinThemeDefault, BuiltinThemeViolet, BuiltinThemePink, BuiltinThemeRose,
		BuiltinThemeSkyBlue, BuiltinThemeDeepBlue, BuiltinThemeGreen, BuiltinThemeDeepGreen,
		BuiltinThemeOrange, BuiltinThemeYellow, BuiltinThemeZinc, BuiltinThemeNeutral,
		BuiltinThemeSlate, BuiltinThemeGray, BuiltinThemeCustom,
	} {
		layers = append(layers, Preferences{Theme: Theme{BuiltinType: Ptr(v)}})
	}
	for _, v := range []ThemeMode{ThemeModeLight, ThemeModeDark, ThemeModeAuto} {
		layers = append(layers, Preferences{Theme: Theme{Mode: Ptr(v)}})
	}
	for _, v := range []TransitionName{TransitionFade, TransitionFadeSlide, TransitionFadeUp, TransitionFadeDown} {
		layers = append(layers, Preferences{Transition: Transition{Name: Ptr(v)}})
	}

	for _, layer := range layers {
		assert.NoError(t, Validate(layer, false))
	}
}

func TestValidate_FieldErrorDetails(t *testing.T) {
	tests := []struct {
		name       string
		layer      Preferences
		wantValue  any
		wantReason string
	}{
		{"enum", Preferences{Theme: Theme{Mode: Ptr(ThemeMode("sepia"))}}, ThemeMode("sepia"), "not a known tag"},
		{"minimum", Preferences{Sidebar: Sidebar{Width: Ptr(-1)}}, -1, "must be at least 0"},
		{"positive height", Preferences{Tabbar: Tabbar{Height: Ptr(0)}}, 0, "must be greater than 0"},
		{"radius", Preferences{Theme: Theme{Radius: Ptr("2")}}, "2", "must be a number between 0 and 1"},
		{"color", Preferences{Theme: Theme{ColorSuccess: Ptr("")}}, "", "empty color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fieldErr *FieldError
			require.True(t, errors.As(Validate(tt.layer, false), &fieldErr))
			assert.Equal(t, tt.wantValue, fieldErr.Value)
			assert.Equal(t, tt.wantReason, fieldErr.Reason)
		})
	}
}

func TestValidate_CompleteRecordPasses(t *testing.T) {
	p := Defaults()
	p.Theme.Mode = Ptr(ThemeModeDark)
	p.Sidebar.Collapsed = Ptr(false)

	assert.NoError(t, Validate(p, true))
}
