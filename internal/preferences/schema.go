// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package preferences

// Preferences is the complete preferences schema of the web shell.
//
// The same type describes every layer: the defaults, the override record and
// the resolved result. Each option is a pointer; nil means "not set in this
// layer" and lets the value of the layer below show through. Struct tags carry
// the camelCase option names used on the wire and in override files, and the
// value domains checked by [Validate].
type Preferences struct {
	App          App          `json:"app" yaml:"app"`
	Breadcrumb   Breadcrumb   `json:"breadcrumb" yaml:"breadcrumb"`
	Copyright    Copyright    `json:"copyright" yaml:"copyright"`
	Footer       Footer       `json:"footer" yaml:"footer"`
	Header       Header       `json:"header" yaml:"header"`
	Logo         Logo         `json:"logo" yaml:"logo"`
	Navigation   Navigation   `json:"navigation" yaml:"navigation"`
	ShortcutKeys ShortcutKeys `json:"shortcutKeys" yaml:"shortcutKeys"`
	Sidebar      Sidebar      `json:"sidebar" yaml:"sidebar"`
	Tabbar       Tabbar       `json:"tabbar" yaml:"tabbar"`
	Theme        Theme        `json:"theme" yaml:"theme"`
	Transition   Transition   `json:"transition" yaml:"transition"`
	Widget       Widget       `json:"widget" yaml:"widget"`
}

// App holds application-wide options: branding, access control source,
// landing route, layout and content spacing.
type App struct {
	// Name is the display title of the shell.
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`

	// AccessMode tells where route and menu authorization data comes from.
	AccessMode *AccessMode `json:"accessMode,omitempty" yaml:"accessMode,omitempty" validate:"omitempty,oneof=frontend backend mixed"`

	AuthPageLayout       *AuthPageLayout `json:"authPageLayout,omitempty" yaml:"authPageLayout,omitempty" validate:"omitempty,oneof=panel-left panel-center panel-right"`
	CheckUpdatesInterval *int            `json:"checkUpdatesInterval,omitempty" yaml:"checkUpdatesInterval,omitempty" validate:"omitempty,min=0"`
	ColorGrayMode        *bool           `json:"colorGrayMode,omitempty" yaml:"colorGrayMode,omitempty"`
	ColorWeakMode        *bool           `json:"colorWeakMode,omitempty" yaml:"colorWeakMode,omitempty"`
	Compact              *bool           `json:"compact,omitempty" yaml:"compact,omitempty"`
	ContentCompact       *ContentCompact `json:"contentCompact,omitempty" yaml:"contentCompact,omitempty" validate:"omitempty,oneof=wide compact"`
	ContentCompactWidth  *int            `json:"contentCompactWidth,omitempty" yaml:"contentCompactWidth,omitempty" validate:"omitempty,min=0"`

	// Content paddings are in pixels.
	ContentPadding       *int `json:"contentPadding,omitempty" yaml:"contentPadding,omitempty" validate:"omitempty,min=0"`
	ContentPaddingBottom *int `json:"contentPaddingBottom,omitempty" yaml:"contentPaddingBottom,omitempty" validate:"omitempty,min=0"`
	ContentPaddingLeft   *int `json:"contentPaddingLeft,omitempty" yaml:"contentPaddingLeft,omitempty" validate:"omitempty,min=0"`
	ContentPaddingRight  *int `json:"contentPaddingRight,omitempty" yaml:"contentPaddingRight,omitempty" validate:"omitempty,min=0"`
	ContentPaddingTop    *int `json:"contentPaddingTop,omitempty" yaml:"contentPaddingTop,omitempty" validate:"omitempty,min=0"`

	DefaultAvatar *string `json:"defaultAvatar,omitempty" yaml:"defaultAvatar,omitempty"`

	// DefaultHomePath is the landing route after login.
	DefaultHomePath *string `json:"defaultHomePath,omitempty" yaml:"defaultHomePath,omitempty"`

	DynamicTitle       *bool `json:"dynamicTitle,omitempty" yaml:"dynamicTitle,omitempty"`
	EnableCheckUpdates *bool `json:"enableCheckUpdates,omitempty" yaml:"enableCheckUpdates,omitempty"`

	// EnablePreferences controls whether end users may open the settings panel.
	EnablePreferences  *bool `json:"enablePreferences,omitempty" yaml:"enablePreferences,omitempty"`
	EnableRefreshToken *bool `json:"enableRefreshToken,omitempty" yaml:"enableRefreshToken,omitempty"`
	IsMobile           *bool `json:"isMobile,omitempty" yaml:"isMobile,omitempty"`

	Layout           *Layout           `json:"layout,omitempty" yaml:"layout,omitempty" validate:"omitempty,oneof=sidebar-nav sidebar-mixed-nav header-nav header-mixed-nav header-sidebar-nav mixed-nav full-content"`
	Locale           *Locale           `json:"locale,omitempty" yaml:"locale,omitempty" validate:"omitempty,oneof=zh-CN en-US"`
	LoginExpiredMode *LoginExpiredMode `json:"loginExpiredMode,omitempty" yaml:"loginExpiredMode,omitempty" validate:"omitempty,oneof=modal page"`

	// Persistence controls whether preference changes survive a reload.
	Persistence *bool `json:"persistence,omitempty" yaml:"persistence,omitempty"`

	PreferencesButtonPosition *ButtonPosition `json:"preferencesButtonPosition,omitempty" yaml:"preferencesButtonPosition,omitempty" validate:"omitempty,oneof=auto fixed header"`
	Watermark                 *bool           `json:"watermark,omitempty" yaml:"watermark,omitempty"`
	ZIndex                    *int            `json:"zIndex,omitempty" yaml:"zIndex,omitempty" validate:"omitempty,min=0"`
}

// Breadcrumb controls the breadcrumb bar.
type Breadcrumb struct {
	Enable      *bool                `json:"enable,omitempty" yaml:"enable,omitempty"`
	HideOnlyOne *bool                `json:"hideOnlyOne,omitempty" yaml:"hideOnlyOne,omitempty"`
	ShowHome    *bool                `json:"showHome,omitempty" yaml:"showHome,omitempty"`
	ShowIcon    *bool                `json:"showIcon,omitempty" yaml:"showIcon,omitempty"`
	StyleType   *BreadcrumbStyleType `json:"styleType,omitempty" yaml:"styleType,omitempty" validate:"omitempty,oneof=normal background"`
}

// Copyright controls the copyright line rendered in the footer.
type Copyright struct {
	CompanyName     *string `json:"companyName,omitempty" yaml:"companyName,omitempty"`
	CompanySiteLink *string `json:"companySiteLink,omitempty" yaml:"companySiteLink,omitempty"`
	Date            *string `json:"date,omitempty" yaml:"date,omitempty"`
	Enable          *bool   `json:"enable,omitempty" yaml:"enable,omitempty"`
	Icp             *string `json:"icp,omitempty" yaml:"icp,omitempty"`
	IcpLink         *string `json:"icpLink,omitempty" yaml:"icpLink,omitempty"`
	SettingShow     *bool   `json:"settingShow,omitempty" yaml:"settingShow,omitempty"`
}

type Footer struct {
	Enable *bool `json:"enable,omitempty" yaml:"enable,omitempty"`
	Fixed  *bool `json:"fixed,omitempty" yaml:"fixed,omitempty"`
	Height *int  `json:"height,omitempty" yaml:"height,omitempty" validate:"omitempty,gt=0"`
}

type Header struct {
	Enable    *bool       `json:"enable,omitempty" yaml:"enable,omitempty"`
	Height    *int        `json:"height,omitempty" yaml:"height,omitempty" validate:"omitempty,gt=0"`
	Hidden    *bool       `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	MenuAlign *MenuAlign  `json:"menuAlign,omitempty" yaml:"menuAlign,omitempty" validate:"omitempty,oneof=start center end"`
	Mode      *HeaderMode `json:"mode,omitempty" yaml:"mode,omitempty" validate:"omitempty,oneof=fixed static auto auto-scroll"`
}

type Logo struct {
	Enable *bool    `json:"enable,omitempty" yaml:"enable,omitempty"`
	Fit    *LogoFit `json:"fit,omitempty" yaml:"fit,omitempty" validate:"omitempty,oneof=contain cover fill none scale-down"`

	// Source is a path or URL of the logo asset.
	Source *string `json:"source,omitempty" yaml:"source,omitempty"`
}

type Navigation struct {
	Accordion *bool                `json:"accordion,omitempty" yaml:"accordion,omitempty"`
	Split     *bool                `json:"split,omitempty" yaml:"split,omitempty"`
	StyleType *NavigationStyleType `json:"styleType,omitempty" yaml:"styleType,omitempty" validate:"omitempty,oneof=rounded plain"`
}

// ShortcutKeys gates keyboard shortcuts. Enable switches all of them off at
// once; the other flags gate individual shortcuts.
type ShortcutKeys struct {
	Enable            *bool `json:"enable,omitempty" yaml:"enable,omitempty"`
	GlobalLockScreen  *bool `json:"globalLockScreen,omitempty" yaml:"globalLockScreen,omitempty"`
	GlobalLogout      *bool `json:"globalLogout,omitempty" yaml:"globalLogout,omitempty"`
	GlobalPreferences *bool `json:"globalPreferences,omitempty" yaml:"globalPreferences,omitempty"`
	GlobalSearch      *bool `json:"globalSearch,omitempty" yaml:"globalSearch,omitempty"`
}

// Sidebar holds sidebar widths (pixels) and behavior toggles.
type Sidebar struct {
	AutoActivateChild   *bool `json:"autoActivateChild,omitempty" yaml:"autoActivateChild,omitempty"`
	Collapsed           *bool `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	CollapsedButton     *bool `json:"collapsedButton,omitempty" yaml:"collapsedButton,omitempty"`
	CollapsedShowTitle  *bool `json:"collapsedShowTitle,omitempty" yaml:"collapsedShowTitle,omitempty"`
	CollapseWidth       *int  `json:"collapseWidth,omitempty" yaml:"collapseWidth,omitempty" validate:"omitempty,min=0"`
	Enable              *bool `json:"enable,omitempty" yaml:"enable,omitempty"`
	ExpandOnHover       *bool `json:"expandOnHover,omitempty" yaml:"expandOnHover,omitempty"`
	ExtraCollapse       *bool `json:"extraCollapse,omitempty" yaml:"extraCollapse,omitempty"`
	ExtraCollapsedWidth *int  `json:"extraCollapsedWidth,omitempty" yaml:"extraCollapsedWidth,omitempty" validate:"omitempty,min=0"`
	FixedButton         *bool `json:"fixedButton,omitempty" yaml:"fixedButton,omitempty"`
	Hidden              *bool `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	MixedWidth          *int  `json:"mixedWidth,omitempty" yaml:"mixedWidth,omitempty" validate:"omitempty,min=0"`
	Width               *int  `json:"width,omitempty" yaml:"width,omitempty" validate:"omitempty,min=0"`
}

type Tabbar struct {
	Draggable          *bool            `json:"draggable,omitempty" yaml:"draggable,omitempty"`
	Enable             *bool            `json:"enable,omitempty" yaml:"enable,omitempty"`
	Height             *int             `json:"height,omitempty" yaml:"height,omitempty" validate:"omitempty,gt=0"`
	KeepAlive          *bool            `json:"keepAlive,omitempty" yaml:"keepAlive,omitempty"`
	MaxCount           *int             `json:"maxCount,omitempty" yaml:"maxCount,omitempty" validate:"omitempty,min=0"`
	MiddleClickToClose *bool            `json:"middleClickToClose,omitempty" yaml:"middleClickToClose,omitempty"`
	Persist            *bool            `json:"persist,omitempty" yaml:"persist,omitempty"`
	Position           *TabbarPosition  `json:"position,omitempty" yaml:"position,omitempty" validate:"omitempty,oneof=header breadcrumb"`
	ShowIcon           *bool            `json:"showIcon,omitempty" yaml:"showIcon,omitempty"`
	ShowMaximize       *bool            `json:"showMaximize,omitempty" yaml:"showMaximize,omitempty"`
	ShowMore           *bool            `json:"showMore,omitempty" yaml:"showMore,omitempty"`
	StyleType          *TabbarStyleType `json:"styleType,omitempty" yaml:"styleType,omitempty" validate:"omitempty,oneof=chrome plain card brisk"`
	Wheelable          *bool            `json:"wheelable,omitempty" yaml:"wheelable,omitempty"`
}

// Theme holds the color scheme and the semantic palette. Colors are CSS color
// expressions (e.g. "hsl(205 100% 53%)"); Radius is a numeric scale in [0,1]
// kept as a string because the shell feeds it into CSS as-is.
type Theme struct {
	BuiltinType      *BuiltinTheme `json:"builtinType,omitempty" yaml:"builtinType,omitempty" validate:"omitempty,oneof=default violet pink rose sky-blue deep-blue green deep-green orange yellow zinc neutral slate gray custom"`
	ColorDestructive *string       `json:"colorDestructive,omitempty" yaml:"colorDestructive,omitempty" validate:"omitempty,color"`
	ColorPrimary     *string       `json:"colorPrimary,omitempty" yaml:"colorPrimary,omitempty" validate:"omitempty,color"`
	ColorSuccess     *string       `json:"colorSuccess,omitempty" yaml:"colorSuccess,omitempty" validate:"omitempty,color"`
	ColorWarning     *string       `json:"colorWarning,omitempty" yaml:"colorWarning,omitempty" validate:"omitempty,color"`
	Mode             *ThemeMode    `json:"mode,omitempty" yaml:"mode,omitempty" validate:"omitempty,oneof=light dark auto"`
	Radius           *string       `json:"radius,omitempty" yaml:"radius,omitempty" validate:"omitempty,radius"`
	SemiDarkHeader   *bool         `json:"semiDarkHeader,omitempty" yaml:"semiDarkHeader,omitempty"`
	SemiDarkSidebar  *bool         `json:"semiDarkSidebar,omitempty" yaml:"semiDarkSidebar,omitempty"`
}

type Transition struct {
	Enable   *bool           `json:"enable,omitempty" yaml:"enable,omitempty"`
	Loading  *bool           `json:"loading,omitempty" yaml:"loading,omitempty"`
	Name     *TransitionName `json:"name,omitempty" yaml:"name,omitempty" validate:"omitempty,oneof=fade fade-slide fade-up fade-down"`
	Progress *bool           `json:"progress,omitempty" yaml:"progress,omitempty"`
}

// Widget toggles the visibility of individual header widgets.
type Widget struct {
	Fullscreen     *bool `json:"fullscreen,omitempty" yaml:"fullscreen,omitempty"`
	GlobalSearch   *bool `json:"globalSearch,omitempty" yaml:"globalSearch,omitempty"`
	LanguageToggle *bool `json:"languageToggle,omitempty" yaml:"languageToggle,omitempty"`
	LockScreen     *bool `json:"lockScreen,omitempty" yaml:"lockScreen,omitempty"`
	Notification   *bool `json:"notification,omitempty" yaml:"notification,omitempty"`
	Refresh        *bool `json:"refresh,omitempty" yaml:"refresh,omitempty"`
	SidebarToggle  *bool `json:"sidebarToggle,omitempty" yaml:"sidebarToggle,omitempty"`
	ThemeToggle    *bool `json:"themeToggle,omitempty" yaml:"themeToggle,omitempty"`
}

// Ptr returns a pointer to v. It is the building block of preference literals.
func Ptr[T any](v T) *T {
	return &v
}

// Value dereferences p, returning the zero value of T when p is nil.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
