// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package preferences

// DefaultAppName is the shell title used when no layer sets app.name.
const DefaultAppName = "Admin Shell"

// Defaults returns the complete default preferences of the shell. Every option
// is set. Each call builds a new value, so callers may keep or modify the
// result without affecting other callers.
func Defaults() Preferences {
	return Preferences{
		App: App{
			Name:                      Ptr(DefaultAppName),
			AccessMode:                Ptr(AccessModeFrontend),
			AuthPageLayout:            Ptr(AuthPageLayoutPanelRight),
			CheckUpdatesInterval:      Ptr(1),
			ColorGrayMode:             Ptr(false),
			ColorWeakMode:             Ptr(false),
			Compact:                   Ptr(false),
			ContentCompact:            Ptr(ContentCompactWide),
			ContentCompactWidth:       Ptr(1200),
			ContentPadding:            Ptr(0),
			ContentPaddingBottom:      Ptr(0),
			ContentPaddingLeft:        Ptr(0),
			ContentPaddingRight:       Ptr(0),
			ContentPaddingTop:         Ptr(0),
			DefaultAvatar:             Ptr("/avatar.webp"),
			DefaultHomePath:           Ptr("/analytics"),
			DynamicTitle:              Ptr(true),
			EnableCheckUpdates:        Ptr(true),
			EnablePreferences:         Ptr(true),
			EnableRefreshToken:        Ptr(false),
			IsMobile:                  Ptr(false),
			Layout:                    Ptr(LayoutSidebarNav),
			Locale:                    Ptr(LocaleZhCN),
			LoginExpiredMode:          Ptr(LoginExpiredModePage),
			Persistence:               Ptr(true),
			PreferencesButtonPosition: Ptr(ButtonPositionAuto),
			Watermark:                 Ptr(false),
			ZIndex:                    Ptr(200),
		},
		Breadcrumb: Breadcrumb{
			Enable:      Ptr(true),
			HideOnlyOne: Ptr(false),
			ShowHome:    Ptr(false),
			ShowIcon:    Ptr(true),
			StyleType:   Ptr(BreadcrumbStyleNormal),
		},
		Copyright: Copyright{
			CompanyName:     Ptr(""),
			CompanySiteLink: Ptr(""),
			Date:            Ptr("2024"),
			Enable:          Ptr(true),
			Icp:             Ptr(""),
			IcpLink:         Ptr(""),
			SettingShow:     Ptr(true),
		},
		Footer: Footer{
			Enable: Ptr(false),
			Fixed:  Ptr(false),
			Height: Ptr(32),
		},
		Header: Header{
			Enable:    Ptr(true),
			Height:    Ptr(50),
			Hidden:    Ptr(false),
			MenuAlign: Ptr(MenuAlignStart),
			Mode:      Ptr(HeaderModeFixed),
		},
		Logo: Logo{
			Enable: Ptr(true),
			Fit:    Ptr(LogoFitContain),
			Source: Ptr("/logo.webp"),
		},
		Navigation: Navigation{
			Accordion: Ptr(true),
			Split:     Ptr(true),
			StyleType: Ptr(NavigationStyleRounded),
		},
		ShortcutKeys: ShortcutKeys{
			Enable:            Ptr(true),
			GlobalLockScreen:  Ptr(true),
			GlobalLogout:      Ptr(true),
			GlobalPreferences: Ptr(true),
			GlobalSearch:      Ptr(true),
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
			Draggable:          Ptr(true),
			Enable:             Ptr(true),
			Height:             Ptr(38),
			KeepAlive:          Ptr(true),
			MaxCount:           Ptr(0),
			MiddleClickToClose: Ptr(false),
			Persist:            Ptr(true),
			Position:           Ptr(TabbarPositionHeader),
			ShowIcon:           Ptr(true),
			ShowMaximize:       Ptr(true),
			ShowMore:           Ptr(true),
			StyleType:          Ptr(TabbarStyleChrome),
			Wheelable:          Ptr(true),
		},
		Theme: Theme{
			BuiltinType:      Ptr(BuiltinThemeDefault),
			ColorDestructive: Ptr("hsl(348 100% 61%)"),
			ColorPrimary:     Ptr("hsl(212 100% 45%)"),
			ColorSuccess:     Ptr("hsl(144 57% 58%)"),
			ColorWarning:     Ptr("hsl(42 84% 61%)"),
			Mode:             Ptr(ThemeModeDark),
			Radius:           Ptr("0.5"),
			SemiDarkHeader:   Ptr(false),
			SemiDarkSidebar:  Ptr(false),
		},
		Transition: Transition{
			Enable:   Ptr(true),
			Loading:  Ptr(true),
			Name:     Ptr(TransitionFadeSlide),
			Progress: Ptr(true),
		},
		Widget: Widget{
			Fullscreen:     Ptr(true),
			GlobalSearch:   Ptr(true),
			LanguageToggle: Ptr(true),
			LockScreen:     Ptr(true),
			Notification:   Ptr(true),
			Refresh:        Ptr(true),
			SidebarToggle:  Ptr(true),
			ThemeToggle:    Ptr(true),
		},
	}
}
