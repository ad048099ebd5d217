// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package preferences

// Overrides returns the project override record: the subset of options this
// deployment changes on top of [Defaults]. Options left nil fall back to the
// defaults when resolved.
//
// appTitle is assigned to app.name as-is; an empty title stays empty.
func Overrides(appTitle string) Preferences {
	return Preferences{
		App: App{
			Name:               Ptr(appTitle),
			AccessMode:         Ptr(AccessModeBackend),
			EnablePreferences:  Ptr(false),
			DefaultHomePath:    Ptr("/home"),
			Persistence:        Ptr(false),
			ContentPadding:     Ptr(4),
			ContentPaddingLeft: Ptr(0),
		},
		Logo: Logo{
			Fit:    Ptr(LogoFitFill),
			Source: Ptr("/logo.svg"),
		},
		Breadcrumb: Breadcrumb{
			Enable: Ptr(false),
		},
		Sidebar: Sidebar{
			AutoActivateChild:   Ptr(false),
			Collapsed:           Ptr(false),
			CollapsedButton:     Ptr(true),
			CollapsedShowTitle:  Ptr(false),
			CollapseWidth:       Ptr(60),
			Enable:              Ptr(true),
			ExpandOnHover:       Ptr(true),
			ExtraCollapse:       Ptr(false),
			ExtraCollapsedWidth: Ptr(60),
			FixedButton:         Ptr(true),
			Hidden:              Ptr(false),
			MixedWidth:          Ptr(80),
			Width:               Ptr(224),
		},
		Tabbar: Tabbar{
			Position:     Ptr(TabbarPositionBreadcrumb),
			ShowMaximize: Ptr(false),
			ShowMore:     Ptr(false),
			ShowIcon:     Ptr(false),
		},
		Header: Header{
			Height: Ptr(42),
		},
		Theme: Theme{
			Mode:             Ptr(ThemeModeLight),
			BuiltinType:      Ptr(BuiltinThemeDefault),
			ColorPrimary:     Ptr("hsl(205 100% 53%)"),
			ColorSuccess:     Ptr("hsl(100 54% 39%)"),
			ColorDestructive: Ptr("hsl(0 48% 55%)"),
			ColorWarning:     Ptr("hsl(36 59% 45%)"),
			Radius:           Ptr("0.25"),
			SemiDarkSidebar:  Ptr(true),
		},
		Widget: Widget{
			GlobalSearch:   Ptr(false),
			Notification:   Ptr(false),
			SidebarToggle:  Ptr(false),
			ThemeToggle:    Ptr(false),
			LanguageToggle: Ptr(false),
			Fullscreen:     Ptr(false),
			LockScreen:     Ptr(false),
			Refresh:        Ptr(false),
		},
		ShortcutKeys: ShortcutKeys{
			Enable:       Ptr(false),
			GlobalLogout: Ptr(false),
			GlobalSearch: Ptr(false),
		},
	}
}
