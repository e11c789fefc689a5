package urlmanager

import (
	"context"

	"github.com/SAP/page-url-manager/internal/params"
	"github.com/SAP/page-url-manager/internal/utils/log_utils"
)

// PageURL describes a link to a portal page. It keeps a reference to the
// request it was created for and must be used only while serving it.
type PageURL struct {
	manager   Manager
	ctx       context.Context
	pageCode  string
	langCode  string
	params    *params.Parameters
	escapeAmp bool
}

func (u *PageURL) PageCode() string {
	return u.pageCode
}

func (u *PageURL) SetPageCode(pageCode string) *PageURL {
	u.pageCode = pageCode
	return u
}

func (u *PageURL) LangCode() string {
	return u.langCode
}

func (u *PageURL) SetLangCode(langCode string) *PageURL {
	u.langCode = langCode
	return u
}

// AddParam sets a query parameter; an existing name keeps its position
func (u *PageURL) AddParam(name, value string) *PageURL {
	u.params.Set(name, value)
	return u
}

// AddParams sets every parameter of p in order
func (u *PageURL) AddParams(p *params.Parameters) *PageURL {
	u.params.SetAll(p)
	return u
}

// Params returns a copy of the query parameters
func (u *PageURL) Params() *params.Parameters {
	return u.params.Clone()
}

func (u *PageURL) EscapeAmp() bool {
	return u.escapeAmp
}

// SetEscapeAmp selects "&amp;" (markup) or "&" (plain URL) as separator
func (u *PageURL) SetEscapeAmp(escapeAmp bool) *PageURL {
	u.escapeAmp = escapeAmp
	return u
}

// URL renders the URL through the manager that created u
func (u *PageURL) URL() (string, error) {
	return u.manager.URLString(u.ctx, u)
}

// String returns the URL, or "" if it can't be rendered. The failure is
// logged by the component that caused it.
func (u *PageURL) String() string {
	url, err := u.URL()
	if err != nil {
		log_utils.GetLogger(u.ctx).V(1).Info("failed to create page url", "page", u.pageCode, "error", err.Error())
		return ""
	}
	return url
}
