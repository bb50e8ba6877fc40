package types

import (
	"restUriHub/internal/errcode"
	"restUriHub/internal/models"
)

// RequestPathCreate 创建 URI 路径段
type RequestPathCreate struct {
	ApiId      string  `json:"api_id" binding:"required,min=1,max=100"`
	PathOrder  *int    `json:"path_order" binding:"required,min=0"`
	PathValue  string  `json:"path_value" binding:"required,min=1,max=100"`
	IsParamUse bool    `json:"is_param_use"`
	ParamNm    *string `json:"param_nm" binding:"omitempty,max=100"`
	ParamTyp   *string `json:"param_typ" binding:"omitempty,max=40"`
	ParamDesc  *string `json:"param_desc"`
	ExampleVal *string `json:"example_val" binding:"omitempty,max=200"`
	UseStatCd  *string `json:"use_stat_cd"`
	CrtUserId  *string `json:"crt_user_id" binding:"omitempty,max=40"`
	MdfyUserId *string `json:"mdfy_user_id" binding:"omitempty,max=40"`
	Tid        *string `json:"tid" binding:"omitempty,max=100"`
	RsnCd      *string `json:"rsn_cd" binding:"omitempty,max=100"`
	TrnsCm     *string `json:"trns_cm" binding:"omitempty,max=100"`
}

// PathCreate 经过校验与枚举解析后的创建参数
type PathCreate struct {
	ApiId      string
	PathOrder  int
	PathValue  string
	IsParamUse bool
	ParamNm    *string
	ParamTyp   *string
	ParamDesc  *string
	ExampleVal *string
	UseStatCd  *models.UseStatus
	CrtUserId  *string
	MdfyUserId *string
	Tid        *string
	RsnCd      *string
	TrnsCm     *string
}

// ToPathCreate 解析 use_stat_cd，非法取值返回校验错误
func (r RequestPathCreate) ToPathCreate() (PathCreate, error) {
	c := PathCreate{
		ApiId:      r.ApiId,
		PathValue:  r.PathValue,
		IsParamUse: r.IsParamUse,
		ParamNm:    r.ParamNm,
		ParamTyp:   r.ParamTyp,
		ParamDesc:  r.ParamDesc,
		ExampleVal: r.ExampleVal,
		CrtUserId:  r.CrtUserId,
		MdfyUserId: r.MdfyUserId,
		Tid:        r.Tid,
		RsnCd:      r.RsnCd,
		TrnsCm:     r.TrnsCm,
	}
	if r.PathOrder != nil {
		c.PathOrder = *r.PathOrder
	}
	if r.UseStatCd != nil && *r.UseStatCd != "" {
		status, err := models.ParseUseStatus(*r.UseStatCd)
		if err != nil {
			return PathCreate{}, errcode.NewValidation("%s", err.Error())
		}
		c.UseStatCd = status.Ptr()
	}
	return c, nil
}

// ResponsePath 路径段摘要
type ResponsePath struct {
	ObjId     string  `json:"obj_id"`
	ApiId     string  `json:"api_id"`
	PathOrder int     `json:"path_order"`
	PathValue string  `json:"path_value"`
	UseStatCd *string `json:"use_stat_cd"`
}

func NewResponsePath(p models.RestUriPath) ResponsePath {
	r := ResponsePath{
		ObjId:     p.GetObjId(),
		ApiId:     p.ApiId,
		PathOrder: p.PathOrder,
		PathValue: p.PathValue,
	}
	if p.UseStatCd != nil {
		s := p.UseStatCd.String()
		r.UseStatCd = &s
	}
	return r
}

func NewResponsePaths(paths []models.RestUriPath) []ResponsePath {
	list := make([]ResponsePath, 0, len(paths))
	for _, p := range paths {
		list = append(list, NewResponsePath(p))
	}
	return list
}
