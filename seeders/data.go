package seeders

type usuarioSeed struct {
	Username       string
	Email          string
	Password       string
	Rol            string
	NombreCompleto string
}

var usuariosData = []usuarioSeed{
	{"admin", "admin@universidad.edu", "admin123", "admin", "Administrador del Sistema"},
	{"jperez", "jperez@universidad.edu", "tecnico123", "tecnico", "Juan Pérez - Técnico de TI"},
	{"mgarcia", "mgarcia@universidad.edu", "tecnico123", "tecnico", "María García - Técnico de Mantenimiento"},
	{"crodriguez", "crodriguez@universidad.edu", "usuario123", "usuario", "Carlos Rodríguez - Docente"},
	{"alopez", "alopez@universidad.edu", "usuario123", "usuario", "Ana López - Secretaria"},
}

type ubicacionSeed struct {
	Edificio    string
	Piso        string
	AulaOficina string
	Descripcion string
}

var ubicacionesData = []ubicacionSeed{
	{"Edificio Principal", "1", "Aula 101", "Aula de informática - Laboratorio 1"},
	{"Edificio Principal", "1", "Aula 102", "Aula de informática - Laboratorio 2"},
	{"Edificio Principal", "1", "Aula 103", "Aula de informática - Laboratorio 3"},
	{"Edificio Principal", "2", "Oficina 201", "Oficina administrativa - Dirección"},
	{"Edificio Principal", "2", "Oficina 202", "Oficina administrativa - Secretaría"},
	{"Edificio Principal", "2", "Oficina 203", "Oficina administrativa - Contabilidad"},
	{"Edificio Principal", "3", "Aula 301", "Aula de clases - Ingeniería"},
	{"Edificio Principal", "3", "Aula 302", "Aula de clases - Ciencias"},
	{"Edificio Anexo", "1", "Laboratorio 1", "Laboratorio de computación - Redes"},
	{"Edificio Anexo", "1", "Laboratorio 2", "Laboratorio de computación - Programación"},
	{"Edificio Anexo", "2", "Sala de Servidores", "Centro de datos y servidores"},
	{"Edificio Anexo", "2", "Almacén TI", "Almacén de equipos y repuestos"},
}

type proveedorSeed struct {
	RazonSocial      string
	RUC              string
	Direccion        string
	Telefono         string
	Email            string
	ContactoNombre   string
	ContactoTelefono string
	SitioWeb         string
	Calificacion     float64
	Notas            string
}

var proveedoresData = []proveedorSeed{
	{
		RazonSocial: "Tecnología Avanzada S.A.", RUC: "20123456789",
		Direccion: "Av. Principal 123, Lima", Telefono: "+51 1 234-5678",
		Email: "ventas@tecavanzada.com", ContactoNombre: "Roberto Silva",
		ContactoTelefono: "+51 999 888 777", SitioWeb: "https://www.tecavanzada.com",
		Calificacion: 4.5, Notas: "Proveedor confiable con buen servicio post-venta",
	},
	{
		RazonSocial: "Equipos Informáticos del Perú S.A.C.", RUC: "20234567890",
		Direccion: "Jr. Comercio 456, Lima", Telefono: "+51 1 345-6789",
		Email: "contacto@equiposinfo.pe", ContactoNombre: "Patricia Mendoza",
		ContactoTelefono: "+51 999 777 666", SitioWeb: "https://www.equiposinfo.pe",
		Calificacion: 4.2, Notas: "Buenos precios, entrega rápida",
	},
	{
		RazonSocial: "Servicios de Mantenimiento TI S.A.", RUC: "20345678901",
		Direccion: "Av. Industrial 789, Lima", Telefono: "+51 1 456-7890",
		Email: "servicios@mantenimientoti.com", ContactoNombre: "Luis Fernández",
		ContactoTelefono: "+51 999 666 555", SitioWeb: "https://www.mantenimientoti.com",
		Calificacion: 4.8, Notas: "Especialistas en mantenimiento preventivo y correctivo",
	},
	{
		RazonSocial: "Distribuidora de Hardware S.A.", RUC: "20456789012",
		Direccion: "Calle Los Olivos 321, Lima", Telefono: "+51 1 567-8901",
		Email: "info@hardwareperu.com", ContactoNombre: "Carmen Torres",
		ContactoTelefono: "+51 999 555 444", SitioWeb: "https://www.hardwareperu.com",
		Calificacion: 3.9, Notas: "Amplio catálogo de productos",
	},
}

type equipoSeed struct {
	Codigo           string
	Categoria        string
	Nombre           string
	Marca            string
	Modelo           string
	NumeroSerie      string
	Especificaciones string
	CostoCompra      float64
	MesesDesdeCompra int
	GarantiaMeses    int
	EstadoOperativo  string
	EstadoFisico     string
	Ubicacion        string
}

var equiposData = []equipoSeed{
	{
		Codigo: "INV-LAP-0001", Categoria: "Laptop", Nombre: "Dell Latitude 5520",
		Marca: "Dell", Modelo: "Latitude 5520", NumeroSerie: "SN100001",
		Especificaciones: `{"procesador": "Intel Core i5", "ram": "16GB", "almacenamiento": "512GB SSD"}`,
		CostoCompra:      1200, MesesDesdeCompra: 18, GarantiaMeses: 36,
		EstadoOperativo: "operativo", EstadoFisico: "bueno", Ubicacion: "Aula 101",
	},
	{
		Codigo: "INV-LAP-0002", Categoria: "Laptop", Nombre: "HP EliteBook 840",
		Marca: "HP", Modelo: "EliteBook 840", NumeroSerie: "SN100002",
		Especificaciones: `{"procesador": "Intel Core i7", "ram": "16GB", "almacenamiento": "512GB SSD"}`,
		CostoCompra:      1450, MesesDesdeCompra: 30, GarantiaMeses: 36,
		EstadoOperativo: "operativo", EstadoFisico: "bueno", Ubicacion: "Oficina 201",
	},
	{
		Codigo: "INV-DES-0003", Categoria: "Desktop", Nombre: "Lenovo ThinkCentre M90",
		Marca: "Lenovo", Modelo: "ThinkCentre M90", NumeroSerie: "SN100003",
		Especificaciones: `{"procesador": "Intel Core i5", "ram": "8GB", "almacenamiento": "256GB SSD"}`,
		CostoCompra:      800, MesesDesdeCompra: 48, GarantiaMeses: 24,
		EstadoOperativo: "operativo", EstadoFisico: "regular", Ubicacion: "Aula 102",
	},
	{
		Codigo: "INV-MON-0004", Categoria: "Monitor", Nombre: "Dell UltraSharp U2720",
		Marca: "Dell", Modelo: "UltraSharp U2720", NumeroSerie: "SN100004",
		Especificaciones: `{"pantalla": "27\"", "resolucion": "2560x1440"}`,
		CostoCompra:      450, MesesDesdeCompra: 12, GarantiaMeses: 36,
		EstadoOperativo: "operativo", EstadoFisico: "excelente", Ubicacion: "Oficina 202",
	},
	{
		Codigo: "INV-IMP-0005", Categoria: "Impresora", Nombre: "HP LaserJet Pro",
		Marca: "HP", Modelo: "LaserJet Pro", NumeroSerie: "SN100005",
		Especificaciones: `{}`,
		CostoCompra:      350, MesesDesdeCompra: 60, GarantiaMeses: 12,
		EstadoOperativo: "en_reparacion", EstadoFisico: "malo", Ubicacion: "Oficina 203",
	},
	{
		Codigo: "INV-SER-0006", Categoria: "Servidor", Nombre: "Dell PowerEdge R740",
		Marca: "Dell", Modelo: "PowerEdge R740", NumeroSerie: "SN100006",
		Especificaciones: `{"procesador": "Intel Xeon Silver", "ram": "64GB", "almacenamiento": "4TB RAID"}`,
		CostoCompra:      4800, MesesDesdeCompra: 24, GarantiaMeses: 60,
		EstadoOperativo: "operativo", EstadoFisico: "bueno", Ubicacion: "Sala de Servidores",
	},
	{
		Codigo: "INV-PRO-0007", Categoria: "Proyector", Nombre: "Epson PowerLite X41+",
		Marca: "Epson", Modelo: "PowerLite X41+", NumeroSerie: "SN100007",
		Especificaciones: `{}`,
		CostoCompra:      520, MesesDesdeCompra: 84, GarantiaMeses: 24,
		EstadoOperativo: "obsoleto", EstadoFisico: "regular", Ubicacion: "Aula 301",
	},
	{
		Codigo: "INV-ROU-0008", Categoria: "Router", Nombre: "Cisco ISR 4331",
		Marca: "Cisco", Modelo: "ISR 4331", NumeroSerie: "SN100008",
		Especificaciones: `{}`,
		CostoCompra:      1900, MesesDesdeCompra: 36, GarantiaMeses: 36,
		EstadoOperativo: "operativo", EstadoFisico: "bueno", Ubicacion: "Sala de Servidores",
	},
	{
		Codigo: "INV-SWI-0009", Categoria: "Switch", Nombre: "Cisco Catalyst 2960",
		Marca: "Cisco", Modelo: "Catalyst 2960", NumeroSerie: "SN100009",
		Especificaciones: `{}`,
		CostoCompra:      1100, MesesDesdeCompra: 40, GarantiaMeses: 36,
		EstadoOperativo: "operativo", EstadoFisico: "bueno", Ubicacion: "Laboratorio 1",
	},
	{
		Codigo: "INV-TAB-0010", Categoria: "Tablet", Nombre: "Samsung Galaxy Tab S7",
		Marca: "Samsung", Modelo: "Galaxy Tab S7", NumeroSerie: "SN100010",
		Especificaciones: `{"pantalla": "11\"", "almacenamiento": "128GB"}`,
		CostoCompra:      650, MesesDesdeCompra: 6, GarantiaMeses: 12,
		EstadoOperativo: "en_almacen", EstadoFisico: "excelente", Ubicacion: "Almacén TI",
	},
}
