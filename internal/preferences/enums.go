// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package preferences

// AccessMode tells the shell where route and menu authorization data
// originates.
type AccessMode string

const (
	AccessModeFrontend AccessMode = "frontend" // routes declared in the front-end bundle
	AccessModeBackend  AccessMode = "backend"  // routes and menus fetched from the backend
	AccessModeMixed    AccessMode = "mixed"
)

type AuthPageLayout string

const (
	AuthPageLayoutPanelLeft   AuthPageLayout = "panel-left"
	AuthPageLayoutPanelCenter AuthPageLayout = "panel-center"
	AuthPageLayoutPanelRight  AuthPageLayout = "panel-right"
)

type ContentCompact string

const (
	ContentCompactWide    ContentCompact = "wide"
	ContentCompactCompact ContentCompact = "compact"
)

type Layout string

const (
	LayoutSidebarNav       Layout = "sidebar-nav"
	LayoutSidebarMixedNav  Layout = "sidebar-mixed-nav"
	LayoutHeaderNav        Layout = "header-nav"
	LayoutHeaderMixedNav   Layout = "header-mixed-nav"
	LayoutHeaderSidebarNav Layout = "header-sidebar-nav"
	LayoutMixedNav         Layout = "mixed-nav"
	LayoutFullContent      Layout = "full-content"
)

type Locale string

const (
	LocaleZhCN Locale = "zh-CN"
	LocaleEnUS Locale = "en-US"
)

type LoginExpiredMode string

const (
	LoginExpiredModeModal LoginExpiredMode = "modal"
	LoginExpiredModePage  LoginExpiredMode = "page"
)

// ButtonPosition is the placement of the preferences button.
type ButtonPosition string

const (
	ButtonPositionAuto   ButtonPosition = "auto"
	ButtonPositionFixed  ButtonPosition = "fixed"
	ButtonPositionHeader ButtonPosition = "header"
)

type BreadcrumbStyleType string

const (
	BreadcrumbStyleNormal     BreadcrumbStyleType = "normal"
	BreadcrumbStyleBackground BreadcrumbStyleType = "background"
)

type MenuAlign string

const (
	MenuAlignStart  MenuAlign = "start"
	MenuAlignCenter MenuAlign = "center"
	MenuAlignEnd    MenuAlign = "end"
)

type HeaderMode string

const (
	HeaderModeFixed      HeaderMode = "fixed"
	HeaderModeStatic     HeaderMode = "static"
	HeaderModeAuto       HeaderMode = "auto"
	HeaderModeAutoScroll HeaderMode = "auto-scroll"
)

// LogoFit is the image scaling mode of the logo, with CSS object-fit
// semantics.
type LogoFit string

const (
	LogoFitContain   LogoFit = "contain"
	LogoFitCover     LogoFit = "cover"
	LogoFitFill      LogoFit = "fill"
	LogoFitNone      LogoFit = "none"
	LogoFitScaleDown LogoFit = "scale-down"
)

type NavigationStyleType string

const (
	NavigationStyleRounded NavigationStyleType = "rounded"
	NavigationStylePlain   NavigationStyleType = "plain"
)

// TabbarPosition places the tab bar either in its own row under the header or
// inline with the breadcrumb bar.
type TabbarPosition string

const (
	TabbarPositionHeader     TabbarPosition = "header"
	TabbarPositionBreadcrumb TabbarPosition = "breadcrumb"
)

type TabbarStyleType string

const (
	TabbarStyleChrome TabbarStyleType = "chrome"
	TabbarStylePlain  TabbarStyleType = "plain"
	TabbarStyleCard   TabbarStyleType = "card"
	TabbarStyleBrisk  TabbarStyleType = "brisk"
)

// BuiltinTheme names a theme preset. BuiltinThemeCustom means the palette
// colors are taken verbatim from the theme section.
type BuiltinTheme string

const (
	BuiltinThemeDefault   BuiltinTheme = "default"
	BuiltinThemeViolet    BuiltinTheme = "violet"
	BuiltinThemePink      BuiltinTheme = "pink"
	BuiltinThemeRose      BuiltinTheme = "rose"
	BuiltinThemeSkyBlue   BuiltinTheme = "sky-blue"
	BuiltinThemeDeepBlue  BuiltinTheme = "deep-blue"
	BuiltinThemeGreen     BuiltinTheme = "green"
	BuiltinThemeDeepGreen BuiltinTheme = "deep-green"
	BuiltinThemeOrange    BuiltinTheme = "orange"
	BuiltinThemeYellow    BuiltinTheme = "yellow"
	BuiltinThemeZinc      BuiltinTheme = "zinc"
	BuiltinThemeNeutral   BuiltinTheme = "neutral"
	BuiltinThemeSlate     BuiltinTheme = "slate"
	BuiltinThemeGray      BuiltinTheme = "gray"
	BuiltinThemeCustom    BuiltinTheme = "custom"
)

// ThemeMode is the color scheme; ThemeModeAuto follows the operating system.
type ThemeMode string

const (
	ThemeModeLight ThemeMode = "light"
	ThemeModeDark  ThemeMode = "dark"
	ThemeModeAuto  ThemeMode = "auto"
)

type TransitionName string

const (
	TransitionFade      TransitionName = "fade"
	TransitionFadeSlide TransitionName = "fade-slide"
	TransitionFadeUp    TransitionName = "fade-up"
	TransitionFadeDown  TransitionName = "fade-down"
)
