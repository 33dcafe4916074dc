package aov

// Catalog returns the fixed set of output files the RenderMan node can
// produce, in render order.
//
//	Beauty   16 bit DWAa
//	Shading  16 bit DWAa
//	Lighting 16 bit DWAa
//	Utility  32 bit ZIPs
//	Deep     16 bit DWAa
//	Cryptomatte
func Catalog() []File {
	return []File{
		{
			Identifier:  Beauty,
			AsRGBA:      true,
			Bitdepth:    Half,
			Compression: DWAA,
			CanDenoise:  true,
			Options: []Option{
				{Key: "beauty", Name: "Beauty + Alpha", AOVs: []string{"Ci", "a"}, Default: true},
			},
		},
		{
			Identifier:  Shading,
			Bitdepth:    Half,
			Compression: DWAA,
			HasCustom:   true,
			CanDenoise:  true,
			Options: []Option{
				{Key: "albedo", Name: "Albedo", AOVs: []string{"albedo"}},
				{Key: "emissive", Name: "Emissive", AOVs: []string{"emissive"}},
				{Key: "diffuse", Name: "(In)direct Diffuse", AOVs: []string{"directDiffuse", "indirectDiffuse"}},
				{Key: "diffuseU", Name: "(In)direct Diffuse Unoccluded", AOVs: []string{"directDiffuseUnoccluded", "indirectDiffuseUnoccluded"}},
				{Key: "specular", Name: "(In)direct Specular", AOVs: []string{"directSpecular", "indirectSpecular"}},
				{Key: "specularU", Name: "(In)direct Specular Unoccluded", AOVs: []string{"directSpecularUnoccluded", "indirectSpecularUnoccluded"}},
				{Key: "subsurface", Name: "Subsurface", AOVs: []string{"albedo"}},
				{Key: "diffuse", Name: "(In)direct Diffuse", AOVs: []string{"directDiffuseLobe", "indirectDiffuseLobe"}, Group: "lobes"},
				{Key: "specularPrimary", Name: "(In)direct Specular Primary", AOVs: []string{"directSpecularPrimaryLobe", "indirectSpecularPrimaryLobe"}, Group: "lobes"},
				{Key: "specularRough", Name: "(In)direct Specular Rough", AOVs: []string{"directSpecularRoughLobe", "indirectSpecularRoughLobe"}, Group: "lobes"},
				{Key: "specularClearcoat", Name: "(In)direct Specular Clearcoat", AOVs: []string{"directSpecularClearcoatLobe", "indirectSpecularClearcoatLobe"}, Group: "lobes"},
				{Key: "specularIridescence", Name: "(In)direct Specular Iridescence", AOVs: []string{"directSpecularIridescenceLobe", "indirectSpecularIridescenceLobe"}, Group: "lobes"},
				{Key: "specularFuzz", Name: "(In)direct Specular Fuzz", AOVs: []string{"directSpecularFuzzLobe", "indirectSpecularFuzzLobe"}, Group: "lobes"},
				{Key: "specularGlass", Name: "(In)direct Specular Glass", AOVs: []string{"directSpecularGlassLobe", "indirectSpecularGlassLobe"}, Group: "lobes"},
				{Key: "subsurface", Name: "Subsurface", AOVs: []string{"subsurfaceLobe"}, Group: "lobes"},
				{Key: "transmissiveSingleScatter", Name: "Transmissive Single Scatter", AOVs: []string{"transmissiveSingleScatterLobe"}, Group: "lobes"},
				{Key: "transmissiveGlass", Name: "Transmissive Glass", AOVs: []string{"transmissiveGlassLobe"}, Group: "lobes"},
			},
		},
		{
			Identifier:  Lighting,
			Bitdepth:    Half,
			Compression: DWAA,
			HasCustom:   true,
			CanDenoise:  true,
			Options: []Option{
				{Key: "shadowOccluded", Name: "Occluded", AOVs: []string{"occluded"}, Group: "shadow"},
				{Key: "shadowUnoccluded", Name: "Unoccluded", AOVs: []string{"unoccluded"}, Group: "shadow"},
				{Key: "shadow", Name: "Shadow", AOVs: []string{"shadow"}, Group: "shadow"},
			},
			Notes: map[string]string{
				"shadow": "Enable the Holdout tag for an object to show up in the shadow AOVs",
			},
		},
		{
			Identifier:  Utility,
			Bitdepth:    Full,
			Compression: ZIPS,
			HasCustom:   true,
			Options: []Option{
				{Key: "curvature", Name: "Curvature", AOVs: []string{"curvature"}},
				{Key: "motionVector", Name: "Motion Vector World Space", AOVs: []string{"dPdtime"}},
				{Key: "motionVectorCamera", Name: "Motion Vector Camera Space", AOVs: []string{"dPcameradtime"}},
				{Key: "pWorld", Name: "Position (world-space)", AOVs: []string{"__Pworld"}},
				{Key: "nWorld", Name: "Normal (world-space)", AOVs: []string{"__Nworld"}},
				{Key: "depthAA", Name: "Depth (Anti-Aliased) + Facing Ratio", AOVs: []string{"__depth"}},
				{Key: "depth", Name: "Depth (Aliased)", AOVs: []string{"z"}},
				{Key: "st", Name: "Texture Coordinates (UV maps)", AOVs: []string{"__st"}},
				{Key: "pRef", Name: "Reference Position", AOVs: []string{"__Pref"}},
				{Key: "nRef", Name: "Reference Normal", AOVs: []string{"__Nref"}},
				{Key: "pRefWorld", Name: "Reference World Position", AOVs: []string{"__WPref"}},
				{Key: "nRefWorld", Name: "Reference World Normal", AOVs: []string{"__WNref"}},
			},
		},
		{
			Identifier:  Deep,
			AsRGBA:      true,
			Bitdepth:    Half,
			Compression: DWAA,
			Options: []Option{
				{Key: "deep", Name: "Deep", AOVs: []string{"Ci", "a"}},
			},
		},
		{
			Identifier:  Cryptomatte,
			Bitdepth:    Half,
			Compression: ZIPS,
			CanDenoise:  true,
			Options: []Option{
				{Key: "cryptoMaterial", Name: "Material", AOVs: []string{"user:__materialid"}},
				{Key: "cryptoName", Name: "Name", AOVs: []string{"identifier:object"}},
				{Key: "cryptoPath", Name: "Path", AOVs: []string{"identifier:name"}},
			},
		},
	}
}
